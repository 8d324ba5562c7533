package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	entryapp "github.com/khanhnv2901/crowdrisk/internal/application/entry"
	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

// runCLI executes a fresh command tree against an isolated HOME and
// database, returning everything written to stdout.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	originalColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = originalColor
		viper.Reset()
		globalAppContext = nil
		cliConfig = newCLIConfig()
		cfgFile = ""
	})

	root := newRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(append([]string{"--database", dbPath, "--log-level", "error"}, args...))

	err := root.Execute()
	_ = globalAppContext.close()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "entries.db")
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assessment.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "crowdrisk version "+Version) {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestRootRunsAllAnalyses(t *testing.T) {
	out, err := runCLI(t, tempDB(t))
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	for _, heading := range []string{
		"CRYPTO CROWD RISK ASSESSMENT",
		"ALGORITHM STRENGTH",
		"COMPLIANCE SUMMARY",
		"WALLET SECURITY ANALYSIS",
		"CROWD RISK SCORING",
		"NETWORK SECURITY ECONOMICS",
		"CRYPTOGRAPHIC AGILITY ASSESSMENT",
		"Reference Standards:",
		"Agility Score: 10/10",
	} {
		if !strings.Contains(out, heading) {
			t.Errorf("expected output to contain %q", heading)
		}
	}
}

func TestAllCommandJSON(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "all", "--format", "json")
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"compliance", "crypto", "market"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
}

func TestOwaspSingleAlgorithm(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "owasp", "--algorithm", "MD5", "--format", "json")
	if err != nil {
		t.Fatalf("owasp failed: %v", err)
	}

	var decoded struct {
		Report struct {
			TotalSystems  int    `json:"total_systems"`
			FailedSystems int    `json:"failed_systems"`
			OverallRisk   string `json:"overall_risk"`
		} `json:"report"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded.Report.TotalSystems != 1 || decoded.Report.FailedSystems != 1 {
		t.Fatalf("expected one failed system, got %+v", decoded.Report)
	}
	if decoded.Report.OverallRisk != "CRITICAL" {
		t.Fatalf("expected CRITICAL overall risk, got %s", decoded.Report.OverallRisk)
	}
}

func TestOwaspNamedKeySizeWins(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "owasp", "--algorithm", "AES-128-GCM", "--key-length", "256")
	if err != nil {
		t.Fatalf("owasp failed: %v", err)
	}
	if !strings.Contains(out, "Compliance: FAIL") {
		t.Fatalf("expected AES-128-GCM to fail despite a 256-bit claim, got:\n%s", out)
	}
	if !strings.Contains(out, "nist800-57") {
		t.Fatalf("expected standards listing, got:\n%s", out)
	}
}

func TestCryptoCommandWithFile(t *testing.T) {
	doc := writeDoc(t, `
wallets:
  - name: Exposed
    type: hot
    key_storage: plaintext
    mnemonic_protected: false
    multisig_enabled: false
    hardware_wallet: false
    value: 20000
`)

	out, err := runCLI(t, tempDB(t), "crypto", "--file", doc, "--format", "json")
	if err != nil {
		t.Fatalf("crypto failed: %v", err)
	}

	var decoded struct {
		Wallets []struct {
			RiskScore   float64 `json:"risk_score"`
			OverallRisk string  `json:"overall_risk"`
		} `json:"wallets"`
		Crowd []json.RawMessage `json:"crowd_risk"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded.Wallets) != 1 {
		t.Fatalf("expected one wallet result, got %d", len(decoded.Wallets))
	}
	if decoded.Wallets[0].RiskScore != 10 || decoded.Wallets[0].OverallRisk != "CRITICAL" {
		t.Fatalf("unexpected wallet result: %+v", decoded.Wallets[0])
	}
	if decoded.Crowd == nil || len(decoded.Crowd) != 0 {
		t.Fatalf("expected an empty crowd_risk array, got %v", decoded.Crowd)
	}
}

func TestCryptoCommandRejectsInvalidWallet(t *testing.T) {
	doc := writeDoc(t, `
wallets:
  - type: lukewarm
    key_storage: encrypted
`)

	_, err := runCLI(t, tempDB(t), "crypto", "--file", doc)
	if !errors.Is(err, sharedErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMarketCommandText(t *testing.T) {
	doc := writeDoc(t, `
networks:
  - name: TestChain
    hashrate: 1000000
    hash_cost: 5
    total_value_secured: 0
`)

	out, err := runCLI(t, tempDB(t), "market", "--file", doc)
	if err != nil {
		t.Fatalf("market failed: %v", err)
	}
	if !strings.Contains(out, "Network: TestChain") {
		t.Fatalf("expected network section, got:\n%s", out)
	}
	if !strings.Contains(out, "$5,000,000") {
		t.Fatalf("expected hourly attack cost, got:\n%s", out)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "crypto", "--format", "xml")
	var formatErr *UnknownFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected UnknownFormatError, got %v", err)
	}
}

func TestEntryLifecycle(t *testing.T) {
	db := tempDB(t)

	out, err := runCLI(t, db, "entry", "add", "Bitcoin", "high", "alice",
		"--volatility", "50", "--sentiment", "bearish", "--date", "2024-01-15")
	if err != nil {
		t.Fatalf("entry add failed: %v", err)
	}
	if !strings.Contains(out, "Added entry 1 for Bitcoin (risk score 95.00)") {
		t.Fatalf("unexpected add output: %q", out)
	}

	// Top-level alias.
	if _, err := runCLI(t, db, "add", "bitcoin", "low", "bob", "--volatility", "10", "--date", "2024-02-01"); err != nil {
		t.Fatalf("add alias failed: %v", err)
	}

	out, err = runCLI(t, db, "entry", "list", "--cryptocurrency", "BITCOIN", "--format", "json")
	if err != nil {
		t.Fatalf("entry list failed: %v", err)
	}
	var views []entryapp.View
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("list output is not JSON: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(views))
	}
	if views[0].Reporter != "bob" || views[0].RiskScore != 23 {
		t.Fatalf("expected newest report first, got %+v", views[0])
	}
	if views[1].Sentiment == nil || *views[1].Sentiment != "bearish" {
		t.Fatalf("expected bearish sentiment on first entry, got %v", views[1].Sentiment)
	}
	if views[0].Sentiment != nil {
		t.Fatalf("expected null sentiment, got %v", *views[0].Sentiment)
	}

	out, err = runCLI(t, db, "stats", "Bitcoin")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Entries: 2") || !strings.Contains(out, "Average Risk Score: 59.00") {
		t.Fatalf("unexpected stats output:\n%s", out)
	}

	exportPath := filepath.Join(t.TempDir(), "export.json")
	out, err = runCLI(t, db, "entry", "export", exportPath)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Exported 2 entries to "+exportPath) {
		t.Fatalf("unexpected export output: %q", out)
	}
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("expected export file: %v", err)
	}

	out, err = runCLI(t, db, "entry", "show", "1")
	if err != nil {
		t.Fatalf("entry show failed: %v", err)
	}
	for _, want := range []string{"Bitcoin", "95.00", "alice", "2024-01-15", "bearish"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected show output to contain %q, got:\n%s", want, out)
		}
	}

	out, err = runCLI(t, db, "entry", "show", "2", "--format", "json")
	if err != nil {
		t.Fatalf("entry show json failed: %v", err)
	}
	var shown entryapp.View
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("show output is not JSON: %v", err)
	}
	if shown.ID != 2 || shown.Reporter != "bob" {
		t.Fatalf("unexpected shown entry: %+v", shown)
	}

	_, err = runCLI(t, db, "entry", "show", "99")
	var missing *EntryNotFoundError
	if !errors.As(err, &missing) || missing.ID != 99 {
		t.Fatalf("expected EntryNotFoundError for id 99, got %v", err)
	}

	if _, err := runCLI(t, db, "entry", "delete", "1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = runCLI(t, db, "entry", "delete", "1")
	var notFound *EntryNotFoundError
	if !errors.As(err, &notFound) || notFound.ID != 1 {
		t.Fatalf("expected EntryNotFoundError for id 1, got %v", err)
	}
}

func TestEntryAddErrors(t *testing.T) {
	db := tempDB(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "bad level", args: []string{"entry", "add", "Bitcoin", "extreme", "alice"}, want: sharedErrors.ErrInvalidRiskLevel},
		{name: "bad sentiment", args: []string{"entry", "add", "Bitcoin", "low", "alice", "--sentiment", "euphoric"}, want: sharedErrors.ErrInvalidSentiment},
		{name: "volatility range", args: []string{"entry", "add", "Bitcoin", "low", "alice", "--volatility", "101"}, want: sharedErrors.ErrVolatilityOutOfRange},
		{name: "bad date", args: []string{"entry", "add", "Bitcoin", "low", "alice", "--date", "15/01/2024"}, want: sharedErrors.ErrInvalidInput},
		{name: "bad id", args: []string{"entry", "delete", "abc"}, want: sharedErrors.ErrInvalidEntryID},
		{name: "bad show id", args: []string{"entry", "show", "0"}, want: sharedErrors.ErrInvalidEntryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, db, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEntryAddRequiresArgs(t *testing.T) {
	if _, err := runCLI(t, tempDB(t), "entry", "add", "Bitcoin"); err == nil {
		t.Fatal("expected an argument count error")
	}
}

func TestEntryStatsEmpty(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "entry", "stats", "Dogecoin")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "No entries found for Dogecoin.") {
		t.Fatalf("unexpected stats output: %q", out)
	}
}
