package consts

import "os"

const (
	VERSION = "0.1.0"

	// Ext is the source extension; SidecarExt the generated one.
	Ext        = ".lg"
	SidecarExt = ".go"
)

var (
	Debug     = os.Getenv("LISGO_DEBUG") != ""
	LisgoPath = os.Getenv("LISGO_PATH")
)
