package xmltree

type EncodeOption func(*EncState)

// RootTag names the document root element. Empty keeps the default
// "root".
func RootTag(tag string) EncodeOption {
	return func(es *EncState) {
		if tag != "" {
			es.root = tag
		}
	}
}

func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.indent = n
		}
	}
}

// Declaration toggles the <?xml ...?> header line.
func Declaration(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.color
		}
	}
}
