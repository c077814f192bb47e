// builtins_encoding.go
//
// base64Encode/base64Decode/urlEncode/urlDecode (§4.6), grounded on the
// teacher's builtin_url_enc.go pattern of thin encoding/* wrappers
// with a soft error for malformed input.
package kodiscript

import (
	"encoding/base64"
	"net/url"
)

func registerEncodingBuiltins(register func(string, BuiltinFunc)) {
	register("base64Encode", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "base64Encode")
		if err != nil {
			return Null, err
		}
		return Str(base64.StdEncoding.EncodeToString([]byte(s))), nil
	})
	register("base64Decode", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "base64Decode")
		if err != nil {
			return Null, err
		}
		b, decErr := base64.StdEncoding.DecodeString(s)
		if decErr != nil {
			return Null, runtimeErrorf("invalid base64: %s", decErr.Error())
		}
		return Str(string(b)), nil
	})
	register("urlEncode", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "urlEncode")
		if err != nil {
			return Null, err
		}
		return Str(url.QueryEscape(s)), nil
	})
	register("urlDecode", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "urlDecode")
		if err != nil {
			return Null, err
		}
		out, decErr := url.QueryUnescape(s)
		if decErr != nil {
			return Null, runtimeErrorf("invalid URL encoding: %s", decErr.Error())
		}
		return Str(out), nil
	})
}
