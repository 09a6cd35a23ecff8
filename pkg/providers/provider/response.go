package provider

import (
	"github.com/tidwall/gjson"
)

// ParseBody validates body as JSON and returns its root.
func ParseBody(id string, body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &MalformedResponseError{Provider: id, Path: "JSON body"}
	}
	return gjson.ParseBytes(body), nil
}

// TextAt returns the string at path (gjson syntax) below root. display is the
// path as documented by the provider and is used in the error.
func TextAt(id string, root gjson.Result, path, display string) (string, error) {
	v := root.Get(path)
	if v.Type != gjson.String {
		return "", &MalformedResponseError{Provider: id, Path: display}
	}
	return v.String(), nil
}
