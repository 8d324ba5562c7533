package cryptorisk

import "testing"

func TestAnalyzeBlockchainProtocol(t *testing.T) {
	tests := []struct {
		input     string
		protocol  string
		hash      string
		vulnCount int
	}{
		{input: "Bitcoin", protocol: "Bitcoin", hash: "SHA-256", vulnCount: 1},
		{input: "btc", protocol: "Bitcoin", hash: "SHA-256", vulnCount: 1},
		{input: "Ethereum", protocol: "Ethereum", hash: "Keccak-256", vulnCount: 2},
		{input: "ETH", protocol: "Ethereum", hash: "Keccak-256", vulnCount: 2},
	}

	for _, tt := range tests {
		result := AnalyzeBlockchainProtocol(tt.input)
		if !result.Recognized {
			t.Errorf("%s: expected recognized", tt.input)
			continue
		}
		if result.Protocol != tt.protocol {
			t.Errorf("%s: Protocol = %s, want %s", tt.input, result.Protocol, tt.protocol)
		}
		if result.Algorithms == nil || result.Algorithms.Hash != tt.hash {
			t.Errorf("%s: unexpected algorithms %+v", tt.input, result.Algorithms)
		}
		if result.Algorithms != nil && result.Algorithms.Signature != "ECDSA-secp256k1" {
			t.Errorf("%s: expected secp256k1 signatures, got %s", tt.input, result.Algorithms.Signature)
		}
		if len(result.Vulnerabilities) != tt.vulnCount {
			t.Errorf("%s: expected %d vulnerabilities, got %v", tt.input, tt.vulnCount, result.Vulnerabilities)
		}
	}
}

func TestAnalyzeBlockchainProtocol_Unknown(t *testing.T) {
	result := AnalyzeBlockchainProtocol("Dogecoin")
	if result.Recognized {
		t.Fatal("expected unrecognized protocol")
	}
	if result.Algorithms != nil {
		t.Fatal("expected no algorithms for unknown protocol")
	}
	if len(result.Vulnerabilities) != 0 || len(result.Recommendations) != 0 {
		t.Fatalf("expected no findings, got %+v", result)
	}
	if result.Protocol != "Dogecoin" {
		t.Fatalf("expected protocol name echoed, got %s", result.Protocol)
	}
}

func TestAnalyzeBlockchainProtocol_DoesNotShareTableSlices(t *testing.T) {
	first := AnalyzeBlockchainProtocol("Bitcoin")
	first.Vulnerabilities[0] = "mutated"
	first.Algorithms.Hash = "mutated"

	second := AnalyzeBlockchainProtocol("Bitcoin")
	if second.Vulnerabilities[0] == "mutated" || second.Algorithms.Hash == "mutated" {
		t.Fatal("results must not alias the static protocol table")
	}
}
