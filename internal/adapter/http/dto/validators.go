package dto

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var routingNumberRe = regexp.MustCompile(`^[0-9]{9}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("service_tag", validateServiceTag)
		_ = v.RegisterValidation("website", validateWebsite)
		_ = v.RegisterValidation("routing_number", validateRoutingNumber)
	}
}

// jsonFieldName reports fields by their JSON key in validation errors.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// validateServiceTag accepts free-text labels such as "Point of Sale" and
// rejects control characters.
func validateServiceTag(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// validateWebsite accepts http/https URLs and bare hosts such as
// "acme.example", which is how most applicants type it.
func validateWebsite(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.Contains(u.Hostname(), ".")
}

// validateRoutingNumber checks an ABA routing number: nine digits with a
// valid 3-7-1 weighted checksum.
func validateRoutingNumber(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !routingNumberRe.MatchString(s) {
		return false
	}
	weights := [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(s[i]-'0') * weights[i]
	}
	return sum%10 == 0
}

// BindingMessage turns a binding error into a client-facing message naming
// the offending fields. Anything other than a validation failure is a
// malformed body.
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	seen := make(map[string]struct{}, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return "Invalid fields: " + strings.Join(fields, ", ")
}

// SanitizeStruct trims surrounding whitespace from every exported string
// field (including *string and []string) of a struct pointer. Values are
// forwarded to the provider, so nothing is escaped.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		case reflect.Slice:
			if f.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < f.Len(); j++ {
				f.Index(j).SetString(strings.TrimSpace(f.Index(j).String()))
			}
		}
	}
}
