// Command fedcore-bench micro-benchmarks the threshold blind-signature
// path: blind, per-guardian sign, combine, unblind, verify, the same
// operations modules/mint and modules/wallet drive on every transaction
// output.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tbsmint/fedcore/tbs"
)

var (
	threshold  int
	parties    int
	iterations int
)

var rootCmd = &cobra.Command{
	Use:   "fedcore-bench",
	Short: "Micro-benchmark the threshold blind-signature combine/verify path",
}

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Time blind, sign, combine, unblind and verify over N iterations",
	RunE:  runCombine,
}

func init() {
	combineCmd.Flags().IntVarP(&threshold, "threshold", "t", 3, "signing threshold")
	combineCmd.Flags().IntVarP(&parties, "parties", "n", 5, "number of guardians")
	combineCmd.Flags().IntVarP(&iterations, "iterations", "i", 100, "number of issuances to benchmark")

	rootCmd.AddCommand(combineCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCombine(cmd *cobra.Command, args []string) error {
	if threshold <= 0 || parties <= 0 || threshold > parties {
		return fmt.Errorf("threshold and parties must be positive, with threshold <= parties (got t=%d n=%d)", threshold, parties)
	}
	if iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}

	shares, err := tbs.DealerKeygen(threshold, parties, rand.Reader)
	if err != nil {
		return fmt.Errorf("dealer keygen: %w", err)
	}

	var blindTotal, signTotal, combineTotal, unblindTotal, verifyTotal time.Duration

	for i := 0; i < iterations; i++ {
		msg, err := tbs.FromBytes([]byte(fmt.Sprintf("bench-message-%d", i)))
		if err != nil {
			return fmt.Errorf("hash message %d: %w", i, err)
		}

		start := time.Now()
		blindingKey, bmsg, err := tbs.BlindMessage(msg, rand.Reader)
		if err != nil {
			return fmt.Errorf("blind message %d: %w", i, err)
		}
		blindTotal += time.Since(start)

		start = time.Now()
		indexed := make([]tbs.IndexedShare, threshold)
		for j := 0; j < threshold; j++ {
			indexed[j] = tbs.IndexedShare{Index: j, Share: tbs.SignBlinded(bmsg, shares.SecretKeyShares[j])}
		}
		signTotal += time.Since(start)

		start = time.Now()
		combined, err := tbs.CombineValidShares(indexed, threshold)
		if err != nil {
			return fmt.Errorf("combine iteration %d: %w", i, err)
		}
		combineTotal += time.Since(start)

		start = time.Now()
		sig := tbs.Unblind(blindingKey, combined)
		unblindTotal += time.Since(start)

		start = time.Now()
		ok, err := tbs.Verify(msg, sig, shares.AggregatePublicKey)
		if err != nil {
			return fmt.Errorf("verify iteration %d: %w", i, err)
		}
		verifyTotal += time.Since(start)
		if !ok {
			return fmt.Errorf("iteration %d: combined signature failed to verify", i)
		}
	}

	fmt.Printf("threshold=%d parties=%d iterations=%d\n", threshold, parties, iterations)
	fmt.Printf("blind:   avg %v\n", blindTotal/time.Duration(iterations))
	fmt.Printf("sign:    avg %v (x%d shares)\n", signTotal/time.Duration(iterations), threshold)
	fmt.Printf("combine: avg %v\n", combineTotal/time.Duration(iterations))
	fmt.Printf("unblind: avg %v\n", unblindTotal/time.Duration(iterations))
	fmt.Printf("verify:  avg %v\n", verifyTotal/time.Duration(iterations))
	return nil
}
