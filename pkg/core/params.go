package core

import "strings"

// Param is a single encoded request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of request parameters.
// Order is significant: the signature is computed over the encoded bytes.
type Params []Param

// NewParams returns Params built from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewParams(kv ...string) Params {
	p := make(Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		p = append(p, Param{Key: kv[i], Value: kv[i+1]})
	}
	return p
}

// Add appends a parameter and returns the extended list.
func (p Params) Add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Get returns the value of the first parameter named key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Encode joins the parameters as key=value pairs separated by '&'.
// Values are written verbatim.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(param.Key)
		sb.WriteByte('=')
		sb.WriteString(param.Value)
	}
	return sb.String()
}
