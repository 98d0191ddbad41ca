package networks

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Network identifies one of the chains Kingmaker is deployed to. Its value
// is the chain ID, so the set is closed: adding a chain is a code change.
type Network uint64

const (
	Mainnet Network = 1
	Ropsten Network = 3
	Rinkeby Network = 4
	Goerli  Network = 5
	Kovan   Network = 42
)

type networkInfo struct {
	name               string
	alternativeNames   []string
	nativeTokenSymbol  string
	nativeTokenDecimal uint64
	blockTime          time.Duration
	nodeVariableName   string
}

// Insert more entries here to support more chains
var networkInfos = map[Network]networkInfo{
	Mainnet: {
		name:               "mainnet",
		alternativeNames:   []string{"ethereum", "homestead"},
		nativeTokenSymbol:  "ETH",
		nativeTokenDecimal: 18,
		blockTime:          14 * time.Second,
		nodeVariableName:   "ETHEREUM_MAINNET_NODE",
	},
	Ropsten: {
		name:               "ropsten",
		nativeTokenSymbol:  "ETH",
		nativeTokenDecimal: 18,
		blockTime:          14 * time.Second,
		nodeVariableName:   "ETHEREUM_ROPSTEN_NODE",
	},
	Rinkeby: {
		name:               "rinkeby",
		nativeTokenSymbol:  "ETH",
		nativeTokenDecimal: 18,
		blockTime:          15 * time.Second,
		nodeVariableName:   "ETHEREUM_RINKEBY_NODE",
	},
	Goerli: {
		name:               "goerli",
		alternativeNames:   []string{"gorli"},
		nativeTokenSymbol:  "ETH",
		nativeTokenDecimal: 18,
		blockTime:          15 * time.Second,
		nodeVariableName:   "ETHEREUM_GOERLI_NODE",
	},
	Kovan: {
		name:               "kovan",
		nativeTokenSymbol:  "ETH",
		nativeTokenDecimal: 18,
		blockTime:          4 * time.Second,
		nodeVariableName:   "ETHEREUM_KOVAN_NODE",
	},
}

func (n Network) info() (networkInfo, bool) {
	info, found := networkInfos[n]
	return info, found
}

// IsValid reports whether n is one of the supported networks.
func (n Network) IsValid() bool {
	_, found := n.info()
	return found
}

func (n Network) Name() string {
	info, found := n.info()
	if !found {
		return fmt.Sprintf("unknown-%d", uint64(n))
	}
	return info.name
}

func (n Network) String() string {
	return n.Name()
}

func (n Network) ChainID() uint64 {
	return uint64(n)
}

func (n Network) AlternativeNames() []string {
	info, _ := n.info()
	return append([]string{}, info.alternativeNames...)
}

func (n Network) NativeTokenSymbol() string {
	info, _ := n.info()
	return info.nativeTokenSymbol
}

func (n Network) NativeTokenDecimal() uint64 {
	info, _ := n.info()
	return info.nativeTokenDecimal
}

func (n Network) BlockTime() time.Duration {
	info, _ := n.info()
	return info.blockTime
}

// NodeVariableName is the env var holding the RPC node URL for n.
func (n Network) NodeVariableName() string {
	info, _ := n.info()
	return info.nodeVariableName
}

// NodeURL returns the RPC node configured through NodeVariableName, or an
// empty string when the variable is unset.
func (n Network) NodeURL() string {
	name := n.NodeVariableName()
	if name == "" {
		return ""
	}
	return strings.Trim(os.Getenv(name), " ")
}
