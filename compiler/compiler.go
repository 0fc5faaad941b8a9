package compiler

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lisgo-lang/lisgo/compiler/codegen"
	"github.com/lisgo-lang/lisgo/compiler/parser"
	"github.com/lisgo-lang/lisgo/logger"
	"github.com/lisgo-lang/lisgo/utils"
)

// cache memoizes compiled snippets; the REPL tends to re-submit the same
// forms. lru.Cache is safe for concurrent Compile calls.
var cache, _ = lru.New[string, string](128)

// Compile translates one S-expression into an equivalent Go expression.
// chunkName is only used in error messages. A failed compile returns no
// partial output.
func Compile(chunk, chunkName string) (string, error) {
	key := utils.Md5([]byte(chunk))
	if code, ok := cache.Get(key); ok {
		logger.I("[compile] cache hit for %s", chunkName)
		return code, nil
	}

	node, err := parser.Parse(chunk, chunkName)
	if err != nil {
		return "", err
	}
	code, err := codegen.Gen(node)
	if err != nil {
		return "", err
	}

	cache.Add(key, code)
	logger.I("[compile] %s -> %d bytes", chunkName, len(code))
	return code, nil
}
