package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/0xPolygon/postman/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// typeMark is appended to unquoted vars so the file can be parsed as TOML before rendering
	typeMark = ":int"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe   = regexp.MustCompile(`=\s*"\{\{([^}:]+)` + typeMark + `\}\}"`)
	typeMarkRe    = regexp.MustCompile(`\{\{([^}:]+)` + typeMark + `\}\}`)
)

// FileData is the content of a configuration file
type FileData struct {
	Name    string
	Content string
}

// Renderer merges TOML files, later files overriding earlier ones, and resolves the {{Var}}
// references between their values. A var can be overridden by the env var <prefix>_<Var>, with
// dots replaced by underscores
type Renderer struct {
	Files     []FileData
	LookupEnv func(key string) (string, bool)
	EnvPrefix string
}

func NewRenderer(files []FileData, envPrefix string) *Renderer {
	return &Renderer{
		Files:     files,
		LookupEnv: os.LookupEnv,
		EnvPrefix: envPrefix,
	}
}

// Render merges the files and resolves every var
func (r *Renderer) Render() (string, error) {
	merged, err := r.Merge()
	if err != nil {
		return "", fmt.Errorf("error merging config files: %w", err)
	}
	return r.resolve(merged)
}

// Merge merges the files without resolving vars
func (r *Renderer) Merge() (string, error) {
	k := koanf.New(".")
	for _, file := range r.Files {
		content := markUnquotedVars(file.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading config file %s: %v", file.Name, err)
			return "", fmt.Errorf("error parsing %s as TOML: %w", file.Name, err)
		}
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("error marshaling merged config: %w", err)
	}
	return unquoteVars(string(out)), nil
}

func (r *Renderer) resolve(data string) (string, error) {
	tpl, values, err := parseTemplate(data)
	if err != nil {
		return "", err
	}
	rendered := removeTypeMarks(r.execute(tpl, values))
	if missing := r.missingVars(tpl, values); len(missing) > 0 {
		return rendered, fmt.Errorf("%v: %w", missing, ErrMissingVars)
	}
	// every var is defined, so whatever is left references other vars
	resolved, err := r.resolveChains(rendered)
	if err != nil {
		return data, err
	}
	return resolved, nil
}

// resolveChains renders data until no var is left. A pass that resolves nothing means a cycle
func (r *Renderer) resolveChains(data string) (string, error) {
	current := unquoteVars(data)
	pending := templateVars(current)
	if len(pending) == 0 {
		return data, nil
	}
	log.Debugf("resolving chained config vars: %v", pending)
	for len(pending) > 0 {
		tpl, values, err := parseTemplate(current)
		if err != nil {
			return "", fmt.Errorf("error resolving chained vars: %w", err)
		}
		next := removeTypeMarks(unquoteVars(r.execute(tpl, values)))
		left := templateVars(next)
		if len(left) == len(pending) {
			return data, fmt.Errorf("%v: %w", left, ErrCycleVars)
		}
		current, pending = next, left
	}
	return current, nil
}

// parseTemplate returns data as a template together with the values it defines. Vars must be
// unquoted (A = {{B}})
func parseTemplate(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing config template: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(markUnquotedVars(data))), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error reading config values: %w", err)
	}
	return tpl, k.All(), nil
}

// execute replaces each var with its env override, or its value. Unknown vars are kept
func (r *Renderer) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := r.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// missingVars returns the vars of tpl that are neither in values nor in the environment
func (r *Renderer) missingVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := r.lookupEnv(tag); ok {
			return 0, nil
		}
		if _, ok := values[tag]; !ok && !slices.Contains(missing, tag) {
			missing = append(missing, tag)
		}
		return 0, nil
	})
	return missing
}

func (r *Renderer) lookupEnv(tag string) (string, bool) {
	return r.LookupEnv(r.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

// templateVars lists every var of data, repeated vars included
func templateVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

// markUnquotedVars turns A = {{B}} into A = "{{B:int}}" so it parses as TOML
func markUnquotedVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}`+typeMark+`}}"`)
}

// unquoteVars reverts markUnquotedVars
func unquoteVars(data string) string {
	return quotedVarRe.ReplaceAllString(data, "= {{${1}}}")
}

func removeTypeMarks(data string) string {
	return typeMarkRe.ReplaceAllString(data, "{{${1}}}")
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// convertFileToToml converts a JSON file to TOML. Unknown types are assumed to be TOML
func convertFileToToml(data string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(data)), json.Parser()); err != nil {
			return data, fmt.Errorf("error loading json file: %w", err)
		}
		out, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return data, fmt.Errorf("error converting json to toml: %w", err)
		}
		return string(out), nil
	case "yml", "yaml", "ini":
		return data, fmt.Errorf("can not convert %s to TOML: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("unknown config file type %s, assuming TOML", fileType)
		return data, nil
	}
}
