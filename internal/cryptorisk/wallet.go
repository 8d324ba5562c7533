// Package cryptorisk analyzes cryptographic risk specific to cryptocurrency
// systems: wallet custody, blockchain protocol primitives, transaction
// signing, and the market-derived crowd risk score.
package cryptorisk

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// WalletType distinguishes internet-connected from offline custody.
type WalletType string

const (
	WalletHot  WalletType = "hot"
	WalletCold WalletType = "cold"
)

// KeyStorage describes how private keys are held at rest.
type KeyStorage string

const (
	KeyStoragePlaintext KeyStorage = "plaintext"
	KeyStorageEncrypted KeyStorage = "encrypted"
	KeyStorageHardware  KeyStorage = "hardware"
)

// HighValueThreshold is the wallet value above which the absence of hardware
// custody or multi-signature is penalised.
const HighValueThreshold = 10_000

// WalletConfig declares the security posture of a wallet.
type WalletConfig struct {
	Name              string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type              WalletType `json:"type" yaml:"type" validate:"oneof=hot cold"`
	KeyStorage        KeyStorage `json:"key_storage" yaml:"key_storage" validate:"oneof=plaintext encrypted hardware"`
	MnemonicProtected bool       `json:"mnemonic_protected" yaml:"mnemonic_protected"`
	MultisigEnabled   bool       `json:"multisig_enabled" yaml:"multisig_enabled"`
	HardwareWallet    bool       `json:"hardware_wallet" yaml:"hardware_wallet"`
	Value             float64    `json:"value" yaml:"value" validate:"gte=0"`
}

// WalletRiskResult is the outcome of AnalyzeWalletSecurity.
type WalletRiskResult struct {
	Wallet          string        `json:"wallet,omitempty"`
	WalletType      WalletType    `json:"wallet_type"`
	RiskScore       float64       `json:"risk_score"`
	OverallRisk     scoring.Level `json:"overall_risk"`
	Risks           []string      `json:"risks"`
	Recommendations []string      `json:"recommendations"`
}

var walletBaseScores = map[WalletType]float64{
	WalletHot:  6,
	WalletCold: 2,
}

var walletBoundaries = []scoring.Boundary{
	{Threshold: 8, Label: scoring.LevelCritical},
	{Threshold: 6, Label: scoring.LevelHigh},
	{Threshold: 3, Label: scoring.LevelMedium},
	{Threshold: 0, Label: scoring.LevelLow},
}

// AnalyzeWalletSecurity scores a wallet configuration on a 0-10 scale.
func AnalyzeWalletSecurity(cfg WalletConfig) (WalletRiskResult, error) {
	if err := validation.Struct(&cfg); err != nil {
		return WalletRiskResult{}, fmt.Errorf("wallet config: %w", err)
	}

	plaintext := cfg.KeyStorage == KeyStoragePlaintext
	highValue := cfg.Value > HighValueThreshold
	unprotectedHighValue := !cfg.HardwareWallet && highValue

	score := scoring.ComputeScore(walletBaseScores[cfg.Type], []scoring.Adjustment{
		scoring.Adjust(4, plaintext),
		scoring.Adjust(-2, cfg.KeyStorage == KeyStorageHardware),
		scoring.Adjust(-1, cfg.MultisigEnabled),
		scoring.Adjust(2, unprotectedHighValue),
		scoring.Adjust(1, !cfg.MnemonicProtected),
	}, scoring.TenPoint)

	// Highest severity first.
	risks := scoring.Collect(
		scoring.When(plaintext, "CRITICAL: Private keys stored in plaintext"),
		scoring.When(!cfg.MnemonicProtected, "HIGH: Mnemonic seed not properly protected"),
		scoring.When(unprotectedHighValue, "HIGH: High-value wallet without hardware custody"),
		scoring.When(!cfg.MultisigEnabled && highValue, "MEDIUM: High-value wallet without multi-sig"),
		scoring.When(cfg.Type == WalletHot && !cfg.HardwareWallet, "LOW: Hot wallet without hardware wallet integration"),
	)
	recommendations := scoring.Collect(
		scoring.When(plaintext, "CRITICAL: Encrypt private keys using AES-256-GCM or ChaCha20-Poly1305"),
		scoring.When(!cfg.MnemonicProtected, "Implement BIP-39 compliant mnemonic with passphrase protection"),
		scoring.When(unprotectedHighValue, "Move high-value holdings to a hardware wallet"),
		scoring.When(!cfg.MultisigEnabled && highValue, "Consider multi-signature (2-of-3 or 3-of-5) for high-value wallets"),
		scoring.When(cfg.Type == WalletHot && !cfg.HardwareWallet, "Hardware wallets provide an additional security layer for hot wallets"),
	)

	return WalletRiskResult{
		Wallet:          cfg.Name,
		WalletType:      cfg.Type,
		RiskScore:       score,
		OverallRisk:     scoring.DeriveLabel(score, walletBoundaries),
		Risks:           risks,
		Recommendations: recommendations,
	}, nil
}
