// builtins_crypto.go
//
// Hashing built-ins (§4.6): md5, sha1, sha256, each returning a lowercase
// hex digest. No third-party hashing library appears in the retrieved
// pack, and the teacher itself reaches for crypto/* directly for digests,
// so this stays on the standard library.
package kodiscript

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
)

func registerCryptoBuiltins(register func(string, BuiltinFunc)) {
	register("md5", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "md5")
		if err != nil {
			return Null, err
		}
		sum := md5.Sum([]byte(s))
		return Str(hex.EncodeToString(sum[:])), nil
	})
	register("sha1", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "sha1")
		if err != nil {
			return Null, err
		}
		sum := sha1.Sum([]byte(s))
		return Str(hex.EncodeToString(sum[:])), nil
	})
	register("sha256", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "sha256")
		if err != nil {
			return Null, err
		}
		sum := sha256.Sum256([]byte(s))
		return Str(hex.EncodeToString(sum[:])), nil
	})
}
