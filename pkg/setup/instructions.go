package setup

import (
	"fmt"
	"io"
)

// Instructions is the manual follow-up shown once the contract is deployed.
type Instructions struct {
	ContractDir string
	ProviderURL string
	// ContractAddress is empty when the deploy output did not contain one.
	ContractAddress string
}

func (in Instructions) Print(w io.Writer) {
	fmt.Fprintln(w, "Config Phase 2: you have to manually configure configFile.js")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "The Provider URL in the configFile.js in [%s] will be: %s\n", in.ContractDir, in.ProviderURL)
	if in.ContractAddress != "" {
		fmt.Fprintf(w, "The contract address to put in the configFile is: %s\n", in.ContractAddress)
	}
	fmt.Fprintln(w, "Web socket will be used to enable Ganache event subscriptions.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Please update the configFile with the above provided data and insert the private key of a rich account (account1SK) and 3 other accounts chosen from Ganache.")
	fmt.Fprintln(w, "  -If you execute terminal tests, almost all the accounts will be used.")
	fmt.Fprintln(w, "  -If you use a React DAPP instead, account1SK will be used to fund brand-new accounts.")
	fmt.Fprintln(w)
}

func printClosing(w io.Writer) {
	fmt.Fprintln(w, "In the end:")
	fmt.Fprintln(w, "  -If you execute terminal test, 'node /src/contract/test/test.js'")
	fmt.Fprintln(w, "  -If you use a React DAPP instead, 'npm start'")
}
