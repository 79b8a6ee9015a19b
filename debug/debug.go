package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Codec   bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Codec = boolEnv("DATACONV_DEBUG_CODEC")
	d.Convert = boolEnv("DATACONV_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Codec() bool {
	return d.Codec
}
func Convert() bool {
	return d.Convert
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
