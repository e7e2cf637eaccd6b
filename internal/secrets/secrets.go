// Package secrets stores provider API keys in the OS keychain.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const serviceName = "mtcompare"

// Providers lists the backends whose key can be kept in the keychain.
var Providers = []string{"systran", "deepl", "openrouter"}

// ErrUnknownProvider is returned for names not in Providers.
var ErrUnknownProvider = errors.New("unknown provider")

// Source tells where a key was found.
type Source string

const (
	SourceNone     Source = ""
	SourceConfig   Source = "config"
	SourceKeychain Source = "keychain"
)

func account(provider string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !slices.Contains(Providers, provider) {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrUnknownProvider, provider, strings.Join(Providers, ", "))
	}
	return provider + "-api-key", nil
}

// Resolve returns configured when it is set, otherwise the keychain entry
// for provider.
func Resolve(provider, configured string) (string, Source) {
	if key := strings.TrimSpace(configured); key != "" {
		return key, SourceConfig
	}
	acct, err := account(provider)
	if err != nil {
		return "", SourceNone
	}
	key, err := keyring.Get(serviceName, acct)
	if err != nil || strings.TrimSpace(key) == "" {
		return "", SourceNone
	}
	return strings.TrimSpace(key), SourceKeychain
}

// Save stores key for provider.
func Save(provider, key string) error {
	acct, err := account(provider)
	if err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("empty key for %s", provider)
	}
	return keyring.Set(serviceName, acct, key)
}

// Delete removes the key for provider. A missing key is not an error.
func Delete(provider string) error {
	acct, err := account(provider)
	if err != nil {
		return err
	}
	if err := keyring.Delete(serviceName, acct); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Stored reports whether the keychain holds a key for provider.
func Stored(provider string) bool {
	_, src := Resolve(provider, "")
	return src == SourceKeychain
}

// Prompt reads a key from the terminal without echoing it.
func Prompt(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
