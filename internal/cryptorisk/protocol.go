package cryptorisk

import "strings"

// ProtocolAlgorithms lists the primitives a blockchain protocol relies on.
type ProtocolAlgorithms struct {
	Signature string `json:"signature"`
	Hash      string `json:"hash"`
	Address   string `json:"address,omitempty"`
}

// ProtocolResult is the outcome of AnalyzeBlockchainProtocol.
type ProtocolResult struct {
	Protocol        string              `json:"protocol"`
	Recognized      bool                `json:"recognized"`
	Algorithms      *ProtocolAlgorithms `json:"algorithms,omitempty"`
	Vulnerabilities []string            `json:"vulnerabilities"`
	Recommendations []string            `json:"recommendations"`
}

type protocolProfile struct {
	name            string
	aliases         []string
	algorithms      ProtocolAlgorithms
	vulnerabilities []string
	recommendations []string
}

var protocolProfiles = buildProtocolIndex([]protocolProfile{
	{
		name:    "Bitcoin",
		aliases: []string{"BTC"},
		algorithms: ProtocolAlgorithms{
			Signature: "ECDSA-secp256k1",
			Hash:      "SHA-256",
			Address:   "RIPEMD-160",
		},
		vulnerabilities: []string{
			"secp256k1 curve has ~128-bit security, quantum-vulnerable",
		},
		recommendations: []string{
			"Monitor quantum computing advances; plan migration to post-quantum signatures",
			"SHA-256 double hashing provides good security",
		},
	},
	{
		name:    "Ethereum",
		aliases: []string{"ETH"},
		algorithms: ProtocolAlgorithms{
			Signature: "ECDSA-secp256k1",
			Hash:      "Keccak-256",
		},
		vulnerabilities: []string{
			"secp256k1 curve has ~128-bit security, quantum-vulnerable",
			"Smart contract vulnerabilities can bypass cryptographic security",
		},
		recommendations: []string{
			"Implement formal verification for critical smart contracts",
			"Use OpenZeppelin audited libraries for cryptographic operations",
		},
	},
})

func buildProtocolIndex(profiles []protocolProfile) map[string]protocolProfile {
	index := make(map[string]protocolProfile)
	for _, p := range profiles {
		index[strings.ToUpper(p.name)] = p
		for _, alias := range p.aliases {
			index[strings.ToUpper(alias)] = p
		}
	}
	return index
}

// AnalyzeBlockchainProtocol reports the primitives and fixed findings for a
// known protocol. Unknown protocols are returned unrecognized with no findings.
func AnalyzeBlockchainProtocol(name string) ProtocolResult {
	result := ProtocolResult{
		Protocol:        name,
		Vulnerabilities: []string{},
		Recommendations: []string{},
	}

	profile, ok := protocolProfiles[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return result
	}

	algorithms := profile.algorithms
	result.Protocol = profile.name
	result.Recognized = true
	result.Algorithms = &algorithms
	result.Vulnerabilities = append(result.Vulnerabilities, profile.vulnerabilities...)
	result.Recommendations = append(result.Recommendations, profile.recommendations...)
	return result
}
