package circle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Blockchain constants for use with Circle API
const (
	// Mainnet blockchains
	BlockchainETH   = "ETH"
	BlockchainAVAX  = "AVAX"
	BlockchainMATIC = "MATIC"
	BlockchainSOL   = "SOL"
	BlockchainARB   = "ARB"
	BlockchainNEAR  = "NEAR"
	BlockchainEVM   = "EVM"
	BlockchainUNI   = "UNI"
	BlockchainOP    = "OP"
	BlockchainBASE  = "BASE"

	// Testnet blockchains
	BlockchainETHSepolia  = "ETH-SEPOLIA"
	BlockchainAVAXFuji    = "AVAX-FUJI"
	BlockchainMATICAmoy   = "MATIC-AMOY"
	BlockchainSOLDevnet   = "SOL-DEVNET"
	BlockchainARBSepolia  = "ARB-SEPOLIA"
	BlockchainNEARTestnet = "NEAR-TESTNET"
	BlockchainEVMTestnet  = "EVM-TESTNET"
	BlockchainUNISepolia  = "UNI-SEPOLIA"
	BlockchainOPSepolia   = "OP-SEPOLIA"
	BlockchainBASESepolia = "BASE-SEPOLIA"
)

// Account types for wallet creation.
const (
	AccountTypeEOA = "EOA"
	AccountTypeSCA = "SCA"
)

// AllBlockchains is a slice containing all supported blockchain values
var AllBlockchains = []string{
	BlockchainETH, BlockchainAVAX, BlockchainMATIC, BlockchainSOL,
	BlockchainARB, BlockchainNEAR, BlockchainEVM, BlockchainUNI,
	BlockchainOP, BlockchainBASE,
	BlockchainETHSepolia, BlockchainAVAXFuji, BlockchainMATICAmoy,
	BlockchainSOLDevnet, BlockchainARBSepolia, BlockchainNEARTestnet,
	BlockchainEVMTestnet, BlockchainUNISepolia, BlockchainOPSepolia,
	BlockchainBASESepolia,
}

var evmBlockchains = map[string]bool{
	BlockchainETH: true, BlockchainETHSepolia: true,
	BlockchainAVAX: true, BlockchainAVAXFuji: true,
	BlockchainMATIC: true, BlockchainMATICAmoy: true,
	BlockchainARB: true, BlockchainARBSepolia: true,
	BlockchainUNI: true, BlockchainUNISepolia: true,
	BlockchainOP: true, BlockchainOPSepolia: true,
	BlockchainBASE: true, BlockchainBASESepolia: true,
	BlockchainEVM: true, BlockchainEVMTestnet: true,
}

var testnetBlockchains = map[string]bool{
	BlockchainETHSepolia: true, BlockchainAVAXFuji: true, BlockchainMATICAmoy: true,
	BlockchainSOLDevnet: true, BlockchainARBSepolia: true, BlockchainNEARTestnet: true,
	BlockchainEVMTestnet: true, BlockchainUNISepolia: true, BlockchainOPSepolia: true,
	BlockchainBASESepolia: true,
}

// IsSupportedBlockchain reports whether chain is in AllBlockchains.
func IsSupportedBlockchain(chain string) bool {
	for _, c := range AllBlockchains {
		if c == chain {
			return true
		}
	}
	return false
}

// IsEVM reports whether chain uses 20-byte hex addresses.
func IsEVM(chain string) bool {
	return evmBlockchains[chain]
}

// IsTestnet reports whether chain is a test network.
func IsTestnet(chain string) bool {
	return testnetBlockchains[chain]
}

// ValidateBlockchains checks if the provided blockchains are valid
// Returns an error if no blockchains are provided or if any blockchain is invalid
func ValidateBlockchains(blockchains []string) error {
	if len(blockchains) == 0 {
		return fmt.Errorf("at least one blockchain must be specified")
	}

	for _, chain := range blockchains {
		if !IsSupportedBlockchain(chain) {
			return fmt.Errorf("invalid blockchain specified: %s", chain)
		}
	}

	return nil
}

// ValidateAddressFormat does the local part of address validation: EVM
// addresses must be 20-byte hex. Other chains are left to the
// API's validateAddress endpoint.
func ValidateAddressFormat(chain, address string) error {
	if address == "" {
		return fmt.Errorf("address is required")
	}
	if IsEVM(chain) && !common.IsHexAddress(address) {
		return fmt.Errorf("invalid %s address: %s", chain, address)
	}
	return nil
}
