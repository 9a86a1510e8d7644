package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"golang.org/x/xerrors"
)

var ErrNotStruct = xerrors.New("filter is not a struct")

// MakeBsonM turns a struct of optional fields into a bson.M. Nil pointers and zero values
// are left out and non-nil pointers are dereferenced, so a filter struct maps to the
// selector of the fields that were set.
func MakeBsonM(filter interface{}) (bson.M, error) {
	val := reflect.ValueOf(filter)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}
		if field.Kind() == reflect.Ptr {
			res[tag.Name] = field.Elem().Interface()
		} else {
			res[tag.Name] = field.Interface()
		}
	}
	return res, nil
}
