// Package compliance checks cryptographic algorithm choices against the
// OWASP 2025 cryptography guidance encoded in its threshold tables.
//
// Architecture overview:
//
//   - tables.go holds the static algorithm catalogue (family, kind, nominal
//     strength, deprecation severity) and the per-family key length policy.
//   - mappings.go maps algorithm kinds onto the standards references quoted in
//     reports.
//   - CheckAlgorithmStrength, CheckQuantumResistance and ValidateKeyGeneration
//     each evaluate a single input; GenerateComplianceReport aggregates the
//     first two over a list of systems.
//
// Lookups are case-insensitive exact matches. An unrecognised algorithm is a
// classification of its own, never an error.
package compliance
