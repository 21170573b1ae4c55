package wallet

import "dispatch/internal/entities"

func isValidOwner(owner entities.WalletOwner) bool {
	if owner.ID <= 0 {
		return false
	}

	switch owner.Kind {
	case entities.OwnerCourier, entities.OwnerPharmacy:
		return true
	default:
		return false
	}
}
