package entity

// ContractAddressSet maps a contract name to its deployed address on one network.
// An empty string marks a contract that is not deployed yet.
type ContractAddressSet map[ContractName]string

// NetworkAddresses maps a fully qualified network name ("<ecosystem>.<network>")
// to the contracts deployed on it.
type NetworkAddresses map[string]ContractAddressSet

// AddressTable is the complete registry: ecosystem name -> network name -> contract set.
type AddressTable map[string]NetworkAddresses

// Clone returns a deep copy of the set.
func (s ContractAddressSet) Clone() ContractAddressSet {
	if s == nil {
		return nil
	}
	out := make(ContractAddressSet, len(s))
	for name, addr := range s {
		out[name] = addr
	}
	return out
}

// Clone returns a deep copy of the network mapping.
func (n NetworkAddresses) Clone() NetworkAddresses {
	if n == nil {
		return nil
	}
	out := make(NetworkAddresses, len(n))
	for network, set := range n {
		out[network] = set.Clone()
	}
	return out
}

// Clone returns a deep copy of the table. Registries keep their own copy so
// that callers mutating the original cannot affect readers.
func (t AddressTable) Clone() AddressTable {
	if t == nil {
		return nil
	}
	out := make(AddressTable, len(t))
	for ecosystem, networks := range t {
		out[ecosystem] = networks.Clone()
	}
	return out
}

// NetworkCount returns the number of networks across all ecosystems.
func (t AddressTable) NetworkCount() int {
	count := 0
	for _, networks := range t {
		count += len(networks)
	}
	return count
}
