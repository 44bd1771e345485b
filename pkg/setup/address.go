package setup

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var hexAddressPattern = regexp.MustCompile(`0x[0-9a-fA-F]{40}`)

// ExtractContractAddress finds the deployed contract's address in the
// output of a truffle deploy. Truffle prints "> contract address: 0x..."
// for each deployment and the migration script logs its own line; the last
// one mentioning a contract address wins.
func ExtractContractAddress(output string) (common.Address, bool) {
	var (
		found common.Address
		ok    bool
	)
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(strings.ToLower(line), "contract address") {
			continue
		}
		match := hexAddressPattern.FindString(line)
		if match == "" || !common.IsHexAddress(match) {
			continue
		}
		found, ok = common.HexToAddress(match), true
	}
	return found, ok
}
