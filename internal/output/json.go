package output

import "encoding/json"

// JSONFormatter renders any result struct as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format marshals v, indented when Pretty is set.
func (jf *JSONFormatter) Format(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
