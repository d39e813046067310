package models

// Canonical column names after alias resolution
const (
	ColumnDate     = "Date"
	ColumnMerchant = "Merchant"
	ColumnDebit    = "Debit"
	ColumnCredit   = "Credit"
)

// DefaultAccountLabel is the Account value emitted when none is configured.
const DefaultAccountLabel = "BAC"

// BAC exports arrive in inconsistent encodings. Accented headers survive a
// clean decode; a UTF-8 export decoded as cp1252 turns "ó" into "Ã³", and a
// lossy decode leaves U+FFFD in its place. Every observed spelling of each
// header is listed so column resolution works on all of them.
var (
	DateColumns = []string{
		"Fecha de Transacción",
		"Fecha de TransacciÃ³n",
		"Fecha de Transacci�n",
		"Fecha de Transaccion",
	}
	DescriptionColumns = []string{
		"Descripción de Transacción",
		"DescripciÃ³n de TransacciÃ³n",
		"Descripci�n de Transacci�n",
		"Descripcion de Transaccion",
	}
	DebitColumns = []string{
		"Débito de Transacción",
		"DÃ©bito de TransacciÃ³n",
		"D�bito de Transacci�n",
		"Debito de Transaccion",
	}
	CreditColumns = []string{
		"Crédito de Transacción",
		"CrÃ©dito de TransacciÃ³n",
		"Cr�dito de Transacci�n",
		"Credito de Transaccion",
	}
)

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)
