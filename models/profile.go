package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payment modes a vendor can choose for payouts.
const (
	PaymentModeUPI  = "upi"
	PaymentModeBank = "bank"
)

// BankDetails is the bank payout triple.
type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
}

// PaymentInfo is a tagged union: a vendor is paid out either to a UPI id or to
// a bank account, never both. Use UPIPayment or BankPayment to construct one.
type PaymentInfo struct {
	Mode  string       `json:"paymentMode"`
	UPIID string       `json:"-"`
	Bank  *BankDetails `json:"-"`
}

// UPIPayment builds UPI payout info.
func UPIPayment(id string) PaymentInfo {
	return PaymentInfo{Mode: PaymentModeUPI, UPIID: id}
}

// BankPayment builds bank payout info.
func BankPayment(accountNumber, ifsc, holderName string) PaymentInfo {
	return PaymentInfo{
		Mode: PaymentModeBank,
		Bank: &BankDetails{
			AccountNumber:     accountNumber,
			IFSCCode:          ifsc,
			AccountHolderName: holderName,
		},
	}
}

// Profile is the vendor business profile as exchanged with /auth/profile.
type Profile struct {
	Name        string      `json:"name,omitempty"`
	Email       string      `json:"email,omitempty"`
	CompanyName string      `json:"companyName"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Location    string      `json:"location"`
	Payment     PaymentInfo `json:"-"`
	VendorID    string      `json:"vendorId,omitempty"`
}

// profileWire is the flat shape the backend expects: upiId and bankDetails are
// both present, with the one not selected by paymentMode explicitly null.
type profileWire struct {
	Name        string       `json:"name,omitempty"`
	Email       string       `json:"email,omitempty"`
	CompanyName string       `json:"companyName"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	Location    string       `json:"location"`
	PaymentMode string       `json:"paymentMode"`
	UPIID       *string      `json:"upiId"`
	Bank        *BankDetails `json:"bankDetails"`
	VendorID    string       `json:"vendorId,omitempty"`
}

func (p Profile) MarshalJSON() ([]byte, error) {
	w := profileWire{
		Name:        p.Name,
		Email:       p.Email,
		CompanyName: p.CompanyName,
		Phone:       p.Phone,
		Address:     p.Address,
		Location:    p.Location,
		PaymentMode: p.Payment.Mode,
		VendorID:    p.VendorID,
	}
	switch p.Payment.Mode {
	case PaymentModeUPI:
		id := p.Payment.UPIID
		w.UPIID = &id
	case PaymentModeBank:
		w.Bank = p.Payment.Bank
	}
	return json.Marshal(w)
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var w profileWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.Name = w.Name
	p.Email = w.Email
	p.CompanyName = w.CompanyName
	p.Phone = w.Phone
	p.Address = w.Address
	p.Location = w.Location
	p.VendorID = w.VendorID
	p.Payment = PaymentInfo{Mode: w.PaymentMode}
	switch w.PaymentMode {
	case PaymentModeBank:
		p.Payment.Bank = w.Bank
	default:
		if w.UPIID != nil {
			p.Payment.UPIID = *w.UPIID
		}
	}
	return nil
}

// Validate enforces the form rules before submission.
func (p Profile) Validate() error {
	if p.CompanyName == "" || p.Phone == "" || p.Address == "" || p.Location == "" {
		return fmt.Errorf("please fill in all required fields")
	}
	if len(p.Phone) < 10 {
		return fmt.Errorf("please enter a valid phone number")
	}
	switch p.Payment.Mode {
	case PaymentModeUPI:
		if !strings.Contains(p.Payment.UPIID, "@") {
			return fmt.Errorf("please enter a valid UPI ID")
		}
	case PaymentModeBank:
		b := p.Payment.Bank
		if b == nil || b.AccountNumber == "" || b.IFSCCode == "" || b.AccountHolderName == "" {
			return fmt.Errorf("please fill in all bank account details")
		}
		if len(b.AccountNumber) < 10 {
			return fmt.Errorf("please enter a valid account number")
		}
	default:
		return fmt.Errorf("unknown payment mode %q", p.Payment.Mode)
	}
	return nil
}
