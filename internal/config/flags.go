package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/urfave/cli/v3"
)

var (
	tagNameEnvConfig = "envconfig" // part after the env prefix
	tagNameFlag      = "flag"      // replaces the flag name. flag:"-" - no flag for this field.
	tagNameUsage     = "usage"     // help text
)

// ParseFlags builds cli flags for every field of the Application struct.
// Each flag writes straight back into the struct, takes the already-loaded
// value as its default and reads the same APP_* variable envconfig would.
// Only string and bool fields exist in the config, so only those kinds are
// supported.
func ParseFlags(app *Application) ([]cli.Flag, error) {
	if app == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(app).Elem()
	t := v.Type()

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		flag, err := parseField(t.Field(i), v.Field(i))
		if err != nil {
			return nil, err
		}

		if flag != nil {
			flags = append(flags, flag)
		}
	}

	return flags, nil
}

func parseField(t reflect.StructField, v reflect.Value) (cli.Flag, error) {
	flagName, ok := t.Tag.Lookup(tagNameFlag)
	switch {
	case !ok:
		flagName = toKebabCase(t.Name)
	case flagName == "-":
		return nil, nil
	}

	envName, ok := t.Tag.Lookup(tagNameEnvConfig)
	if !ok {
		envName = toScreamingSnakeCase(t.Name)
	}

	envName = envPrefix + "_" + envName

	usage, _ := t.Tag.Lookup(tagNameUsage)

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	switch v.Kind() {
	case reflect.String:
		dst, ok := v.Addr().Interface().(*string)
		if !ok {
			return nil, fmt.Errorf("failed to cast *string: %s", t.Name)
		}

		return &cli.StringFlag{
			Name:        flagName,
			Value:       *dst,
			Destination: dst,
			Usage:       usage,
			Sources:     cli.EnvVars(envName),
		}, nil

	case reflect.Bool:
		dst, ok := v.Addr().Interface().(*bool)
		if !ok {
			return nil, fmt.Errorf("failed to cast *bool: %s", t.Name)
		}

		return &cli.BoolFlag{
			Name:        flagName,
			Value:       *dst,
			Destination: dst,
			Usage:       usage,
			Sources:     cli.EnvVars(envName),
		}, nil

	default:
		return nil, fmt.Errorf("type %v is unsupported", v.Kind())
	}
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
