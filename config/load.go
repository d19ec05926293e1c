package config

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs
// (relative to it), then overlays environment variables. POSTGRES_SSLMODE
// lands on postgres.sslMode because each env segment is matched against the
// keys already present in the file.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	keys := envKeyMapper{tree: k.Raw()}
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(name, value string) (string, any) {
			return keys.path(name), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	out := new(T)
	err = k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return out, nil
}

func locate(fileName string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, fileName)}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir, fileName))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", fileName)
}

// envKeyMapper turns FOO_BAR_BAZ into a dotted koanf path, reusing the
// spelling of keys found in the loaded YAML tree.
type envKeyMapper struct {
	tree map[string]any
}

func (m envKeyMapper) path(envName string) string {
	level := m.tree
	var parts []string

	for _, segment := range strings.Split(strings.ToLower(envName), "_") {
		if segment == "" {
			continue
		}
		key, child := lookupFolded(level, segment)
		parts = append(parts, key)
		level = child
	}

	return strings.Join(parts, ".")
}

// lookupFolded returns the key of level matching segment, ignoring case and
// punctuation, plus its subtree. Unknown segments are returned unchanged.
func lookupFolded(level map[string]any, segment string) (string, map[string]any) {
	want := fold(segment)
	for key, value := range level {
		if fold(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

var replicaEnv = regexp.MustCompile(`^POSTGRES_REPLICAS_(\d+)_(HOST|PORT|USERNAME|PASSWORD)=(.*)$`)

// replicasFromEnv collects POSTGRES_REPLICAS_<n>_<FIELD> variables in index
// order. Entries without both host and port are skipped.
func replicasFromEnv(environ []string) []postgres.ConnectionConfig {
	byIndex := map[int]*postgres.ConnectionConfig{}

	for _, kv := range environ {
		match := replicaEnv.FindStringSubmatch(kv)
		if match == nil {
			continue
		}
		idx, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		replica, ok := byIndex[idx]
		if !ok {
			replica = &postgres.ConnectionConfig{}
			byIndex[idx] = replica
		}

		switch match[2] {
		case "HOST":
			replica.Host = match[3]
		case "PORT":
			replica.Port = match[3]
		case "USERNAME":
			replica.UserName = match[3]
		case "PASSWORD":
			replica.Password = match[3]
		}
	}

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	var replicas []postgres.ConnectionConfig
	for _, idx := range indexes {
		if r := byIndex[idx]; r.Host != "" && r.Port != "" {
			replicas = append(replicas, *r)
		}
	}

	return replicas
}
