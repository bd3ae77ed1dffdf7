package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

const tagPrefix = "viper"

var durationType = reflect.TypeOf(time.Duration(0))

// populateStatusConfig is used to parse config read through viper
func populateStatusConfig(config *StatusConfig) (*StatusConfig, error) {
	err := recursivelySet(reflect.ValueOf(config), "")
	if err != nil {
		return nil, err
	}

	return config, nil
}

// recursivelySet is used to recursively set conf read from
// files to golang structs. Since nested values are accessed using periods
// we need to recursively parse the values
func recursivelySet(val reflect.Value, prefix string) error {
	if val.Kind() != reflect.Ptr {
		return errors.New("config target must be a pointer")
	}

	// dereference
	val = reflect.Indirect(val)
	if val.Kind() != reflect.Struct {
		return errors.New("config target must point to a struct")
	}

	// grab the type for this instance
	vType := reflect.TypeOf(val.Interface())

	// go through child fields
	for i := 0; i < val.NumField(); i++ {
		thisField := val.Field(i)
		thisType := vType.Field(i)
		tags := getTags(thisType)
		// try to fetch value for each key using multiple tags
		for _, tag := range tags {
			key := prefix + tag
			switch {
			case thisField.Type() == durationType:
				// skip the update if tag is not set in viper
				if viper.GetDuration(key) == 0 && thisField.Int() != 0 {
					continue
				}
				thisField.SetInt(int64(viper.GetDuration(key)))
			case thisField.Kind() == reflect.Struct:
				if err := recursivelySet(thisField.Addr(), key+"."); err != nil {
					return err
				}
			case thisField.Kind() == reflect.Int, thisField.Kind() == reflect.Int32, thisField.Kind() == reflect.Int64:
				// you can only set with an int64 -> int
				configVal := int64(viper.GetInt(key))
				if configVal == 0 && thisField.Int() != 0 {
					continue
				}
				thisField.SetInt(configVal)
			case thisField.Kind() == reflect.String:
				if viper.GetString(key) == "" && thisField.String() != "" {
					continue
				}
				thisField.SetString(viper.GetString(key))
			case thisField.Kind() == reflect.Bool:
				if !viper.GetBool(key) && thisField.Bool() {
					continue
				}
				thisField.SetBool(viper.GetBool(key))
			case thisField.Kind() == reflect.Map:
				continue
			default:
				return fmt.Errorf("unexpected type detected ~ aborting: %s", thisField.Kind())
			}
		}
	}

	return nil
}

func getTags(field reflect.StructField) []string {
	// check if maybe we have a special magic tag
	tag := field.Tag
	values := []string{}
	if tag != "" {
		for _, prefix := range []string{tagPrefix, "yaml", "json", "env", "mapstructure"} {
			if v := tag.Get(prefix); v != "" {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			return values
		}
	}

	return []string{field.Name}
}
