package loaderutil

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

var specialValues = map[string]any{
	"null":  nil,
	"true":  true,
	"false": false,
}

// ParseQuery parses a transformer query string into options.
//
//	?name=cheesecake&slices=8&delicious&-warm   → name:"cheesecake" slices:"8" delicious:true warm:false
//	?ingredients[]=flour&ingredients[]=sugar   → ingredients:["flour" "sugar"]
//	?{"slices": 8, "toppings": {"cream": true}} → slices:8 toppings:{cream:true}
//
// Arguments are separated by "," or "&" and percent-decoded. Values "true",
// "false" and "null" are converted; all other values stay strings. Object
// notation is read as a flow mapping and keeps its value types.
// An empty query yields an empty map; any other query must start with '?'.
func ParseQuery(query string) (map[string]any, error) {
	result := make(map[string]any)
	if query == "" {
		return result, nil
	}
	if query[0] != '?' {
		return nil, fmt.Errorf("%w: a valid query string should begin with '?': %q", ErrInvalidQuery, query)
	}
	query = query[1:]
	if query == "" {
		return result, nil
	}
	if strings.HasPrefix(query, "{") && strings.HasSuffix(query, "}") {
		if err := yaml.Unmarshal([]byte(query), &result); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		return result, nil
	}
	for _, arg := range strings.FieldsFunc(query, func(r rune) bool { return r == ',' || r == '&' }) {
		name, rawValue, hasValue := strings.Cut(arg, "=")
		if !hasValue {
			value := true
			switch arg[0] {
			case '-':
				value, name = false, arg[1:]
			case '+':
				name = arg[1:]
			}
			result[decodeComponent(name)] = value
			continue
		}
		var value any = decodeComponent(rawValue)
		if v, ok := specialValues[value.(string)]; ok {
			value = v
		}
		if list, ok := strings.CutSuffix(name, "[]"); ok {
			key := decodeComponent(list)
			values, _ := result[key].([]any)
			result[key] = append(values, value)
			continue
		}
		result[decodeComponent(name)] = value
	}
	return result, nil
}

// decodeComponent percent-decodes s. Malformed escapes leave s unchanged.
func decodeComponent(s string) string {
	d, err := url.PathUnescape(s)
	if err != nil {
		T().Debugf("query component %q is not well-formed: %v", s, err)
		return s
	}
	return d
}

// GetOptions returns the options of the transformer: the parsed Query if it
// is set, otherwise QueryOptions, which may be nil.
func GetOptions(lc *LoaderContext) (map[string]any, error) {
	if lc.Query != "" {
		return ParseQuery(lc.Query)
	}
	return lc.QueryOptions, nil
}

// GetLoaderConfig merges a configuration section of lc.Config with the
// parsed query. The section is named by the query option "config", or else
// by defaultKey. Query options take precedence.
func GetLoaderConfig(lc *LoaderContext, defaultKey string) (map[string]any, error) {
	query, err := ParseQuery(lc.Query)
	if err != nil {
		return nil, err
	}
	key := defaultKey
	if k, ok := query["config"].(string); ok && k != "" {
		key = k
	}
	if key == "" {
		return query, nil
	}
	delete(query, "config")
	config := make(map[string]any, len(query))
	maps.Copy(config, lc.Config[key])
	maps.Copy(config, query)
	return config, nil
}
