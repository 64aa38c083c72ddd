package shellfish

import (
	"context"
	"os"

	"github.com/davenverse/shellfish/effect"
	"github.com/davenverse/shellfish/errs"
)

// Env describes reading an environment variable. A variable that is not
// set fails with errs.CodeNotFound; an empty value is not an error.
func Env(key string) effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		value, ok := os.LookupEnv(key)
		if !ok {
			return "", errs.Newf(errs.CodeNotFound, "environment variable %s is not set", key)
		}
		return value, nil
	})
}

// EnvOr describes reading an environment variable, yielding fallback when
// it is not set.
func EnvOr(key, fallback string) effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		if value, ok := os.LookupEnv(key); ok {
			return value, nil
		}
		return fallback, nil
	})
}

// HomeDir describes resolving the current user's home directory.
func HomeDir() effect.Effect[string] {
	return effect.Suspend(func(context.Context) (string, error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errs.Wrap(err, errs.CodeNotFound, "resolving home directory")
		}
		return home, nil
	})
}
