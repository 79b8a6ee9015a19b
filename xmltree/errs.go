package xmltree

import "errors"

var (
	ErrParse    = errors.New("xml parse error")
	ErrSecurity = errors.New("xml security rejection")
	ErrEncode   = errors.New("xml encode error")
)
