package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected with SetNetwork, Mainnet if
// none was selected.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == 0 {
		return Mainnet
	}
	return cachedNetwork
}

// SetNetwork selects the network used by CurrentNetwork. On error the
// previous selection is kept.
func SetNetwork(networkStr string) (Network, error) {
	n, err := GetNetwork(networkStr)
	if err != nil {
		return 0, err
	}

	mu.Lock()
	defer mu.Unlock()
	cachedNetwork = n
	return n, nil
}
