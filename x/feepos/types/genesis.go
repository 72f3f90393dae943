// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// x/feepos - Genesis State

package types

// GenesisState defines the feepos module's genesis state: every vault's
// Policy paired with its Progress, as initialized by prior initialize/
// distribute calls.
type GenesisState struct {
	Policies   []Policy   `json:"policies"`
	Progresses []Progress `json:"progresses"`
}

// DefaultGenesisState returns the module's default genesis state: no
// vaults configured yet.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Policies:   []Policy{},
		Progresses: []Progress{},
	}
}

// Validate performs basic genesis sanity checks: every policy validates on
// its own terms, every progress record has a corresponding policy, and no
// vault is duplicated.
func (gs GenesisState) Validate() error {
	seenPolicy := make(map[VaultID]bool, len(gs.Policies))
	for _, p := range gs.Policies {
		if seenPolicy[p.Vault] {
			return ErrPolicyAlreadyExists
		}
		seenPolicy[p.Vault] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}

	seenProgress := make(map[VaultID]bool, len(gs.Progresses))
	for _, pr := range gs.Progresses {
		if seenProgress[pr.Vault] {
			return ErrPolicyAlreadyExists
		}
		seenProgress[pr.Vault] = true
		if !seenPolicy[pr.Vault] {
			return ErrPolicyNotFound
		}
	}

	return nil
}
