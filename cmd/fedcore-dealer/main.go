// Command fedcore-dealer runs a trusted-dealer threshold keygen for the
// federation's blind-signing key, the way an operator would bootstrap a new
// federation of guardians before deployment.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tbsmint/fedcore/tbs"
)

var (
	threshold int
	parties   int
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "fedcore-dealer",
	Short: "Trusted-dealer keygen for a fedcore guardian federation",
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a (threshold, parties) set of guardian key shares",
	RunE:  runKeygen,
}

func init() {
	keygenCmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "signing threshold (required)")
	keygenCmd.Flags().IntVarP(&parties, "parties", "n", 0, "number of guardians (required)")
	keygenCmd.Flags().StringVarP(&outputDir, "output", "o", "./fedcore-keys", "directory to write one JSON file per guardian")
	keygenCmd.MarkFlagRequired("threshold")
	keygenCmd.MarkFlagRequired("parties")

	rootCmd.AddCommand(keygenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// guardianKeyFile is the on-disk form of one guardian's share of the
// federation key, handed to that guardian out of band.
type guardianKeyFile struct {
	GuardianIndex      int    `json:"guardianIndex"`
	Threshold          int    `json:"threshold"`
	Parties            int    `json:"parties"`
	SecretShare        string `json:"secretShare"` // hex scalar
	PublicShare        string `json:"publicShare"` // hex compressed G2
	AggregatePublicKey string `json:"aggregatePublicKey"`
}

func runKeygen(cmd *cobra.Command, args []string) error {
	if threshold <= 0 || parties <= 0 || threshold > parties {
		return fmt.Errorf("threshold and parties must be positive, with threshold <= parties (got t=%d n=%d)", threshold, parties)
	}

	shares, err := tbs.DealerKeygen(threshold, parties, rand.Reader)
	if err != nil {
		return fmt.Errorf("dealer keygen: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	aggHex := hex.EncodeToString(tbs.MarshalG2(shares.AggregatePublicKey))

	for i := 0; i < parties; i++ {
		file := guardianKeyFile{
			GuardianIndex:      i,
			Threshold:          threshold,
			Parties:            parties,
			SecretShare:        hex.EncodeToString(shares.SecretKeyShares[i].Bytes()),
			PublicShare:        hex.EncodeToString(tbs.MarshalG2(shares.PublicKeyShares[i])),
			AggregatePublicKey: aggHex,
		}

		data, err := json.MarshalIndent(file, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal guardian %d key file: %w", i, err)
		}

		path := filepath.Join(outputDir, fmt.Sprintf("guardian-%d.json", i))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write guardian %d key file: %w", i, err)
		}
		fmt.Printf("guardian %d key written to %s\n", i, path)
	}

	fmt.Printf("federation aggregate public key: %s\n", aggHex)
	return nil
}
