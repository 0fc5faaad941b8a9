package utils

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/lisgo-lang/lisgo/consts"
	"github.com/lisgo-lang/lisgo/term"
)

const releaseURL = "https://api.github.com/repos/lisgo-lang/lisgo/releases/latest"

// short timeout: the check must never hold up the REPL noticeably
var client = http.Client{
	Timeout: 500 * time.Millisecond,
}

// CheckUpgrade probes the latest release tag and prints a hint when a
// newer version exists. Failures are silent. The caller must wg.Add(1)
// before spawning this.
func CheckUpgrade(wg *sync.WaitGroup) {
	defer wg.Done()

	resp, err := client.Get(releaseURL)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	latest := strings.TrimPrefix(gjson.GetBytes(data, "tag_name").String(), "v")
	if latest != "" && latest != consts.VERSION {
		term.Yellow("new version available: v%s (current v%s)", latest, consts.VERSION)
	}
}
