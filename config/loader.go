package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load reads <name>.yaml from the first of dirs that has it (relative dirs
// are resolved against the working directory), then lets environment
// variables override any key: POSTGRES_SSLMODE sets postgres.sslMode.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if err := overlayEnv(k); err != nil {
		return nil, err
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func locate(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", filename, strings.Join(dirs, ", "))
}

// overlayEnv loads an optional .env file and then the process environment.
// Variables already exported win over .env entries.
func overlayEnv(k *koanf.Koanf) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "load .env")
	}

	fromYAML := k.Raw()
	provider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	})

	return errors.Wrap(k.Load(provider, nil), "load environment")
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

// canonicalizeEnvKey maps FOO_BAR_BAZ onto the key path spelled the way the
// YAML spells it, so camelCase keys can be overridden. Segments the YAML does
// not know are kept lower-cased.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var path []string
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(tree, segment)
		path = append(path, key)
		tree = child
	}

	return strings.Join(path, ".")
}

func matchKey(tree map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range tree {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
