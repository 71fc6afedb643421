package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fieldservice/internal/access"
	"github.com/GlebRadaev/fieldservice/internal/apperrors"
	"github.com/GlebRadaev/fieldservice/internal/domain"
)

var std = New()

// New returns a validator that understands decimal amounts and the domain
// enums (territory, order_source, engineer_type, role, order_status).
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	rules := map[string]func(string) bool{
		"territory":     func(s string) bool { return domain.TerritoryType(s).Valid() },
		"order_source":  func(s string) bool { return domain.OrderSource(s).Valid() },
		"order_status":  func(s string) bool { return domain.OrderStatus(s).Valid() },
		"engineer_type": func(s string) bool { return domain.EngineerType(s).Valid() },
		"role":          func(s string) bool { return access.Role(s).Valid() },
	}
	for tag, fn := range rules {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// Struct validates s and reports the first violation as ValidationFailed.
func Struct(s interface{}) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		return apperrors.Invalid("%s fails %s", fe.Field(), rule)
	}
	return apperrors.Invalid("%v", err)
}
