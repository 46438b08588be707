package near

import "fmt"

// Action is one of the non-delegate NEAR actions a delegate action may wrap.
// The set is closed: only the types in this file implement it.
type Action interface {
	actionTag() uint8
	encodeFields(e *encoder) error
}

const (
	tagCreateAccount uint8 = iota
	tagDeployContract
	tagFunctionCall
	tagTransfer
	tagStake
	tagAddKey
	tagDeleteKey
	tagDeleteAccount
)

// CreateAccount creates the receiver account.
type CreateAccount struct{}

// DeployContract deploys wasm code to the receiver.
type DeployContract struct {
	Code []byte
}

// FunctionCall invokes a contract method on the receiver.
type FunctionCall struct {
	MethodName string
	Args       []byte
	Gas        uint64
	Deposit    Balance
}

// Transfer moves Deposit yoctoNEAR to the receiver.
type Transfer struct {
	Deposit Balance
}

// Stake stakes Stake yoctoNEAR with the given validator key.
type Stake struct {
	Stake     Balance
	PublicKey PublicKey
}

// AddKey adds an access key to the receiver account.
type AddKey struct {
	PublicKey PublicKey
	AccessKey AccessKey
}

// DeleteKey removes an access key from the receiver account.
type DeleteKey struct {
	PublicKey PublicKey
}

// DeleteAccount deletes the receiver, sending the remaining balance to
// BeneficiaryID.
type DeleteAccount struct {
	BeneficiaryID string
}

// AccessKey is the nonce and permission attached to an added key.
type AccessKey struct {
	Nonce      uint64
	Permission AccessKeyPermission
}

// AccessKeyPermission is either FullAccess or FunctionCallPermission.
type AccessKeyPermission interface {
	permissionTag() uint8
	encodeFields(e *encoder) error
}

// FullAccess grants unrestricted use of the key.
type FullAccess struct{}

// FunctionCallPermission restricts a key to calls on ReceiverID, optionally
// to MethodNames and up to Allowance in fees.
type FunctionCallPermission struct {
	Allowance   *Balance
	ReceiverID  string
	MethodNames []string
}

func (CreateAccount) actionTag() uint8  { return tagCreateAccount }
func (DeployContract) actionTag() uint8 { return tagDeployContract }
func (FunctionCall) actionTag() uint8   { return tagFunctionCall }
func (Transfer) actionTag() uint8       { return tagTransfer }
func (Stake) actionTag() uint8          { return tagStake }
func (AddKey) actionTag() uint8         { return tagAddKey }
func (DeleteKey) actionTag() uint8      { return tagDeleteKey }
func (DeleteAccount) actionTag() uint8  { return tagDeleteAccount }

func (CreateAccount) encodeFields(*encoder) error { return nil }

func (a DeployContract) encodeFields(e *encoder) error {
	e.bytes(a.Code)
	return nil
}

func (a FunctionCall) encodeFields(e *encoder) error {
	e.string(a.MethodName)
	e.bytes(a.Args)
	e.u64(a.Gas)
	e.u128(a.Deposit)
	return nil
}

func (a Transfer) encodeFields(e *encoder) error {
	e.u128(a.Deposit)
	return nil
}

func (a Stake) encodeFields(e *encoder) error {
	e.u128(a.Stake)
	return e.publicKey(a.PublicKey)
}

func (a AddKey) encodeFields(e *encoder) error {
	if err := e.publicKey(a.PublicKey); err != nil {
		return err
	}
	e.u64(a.AccessKey.Nonce)
	if a.AccessKey.Permission == nil {
		return fmt.Errorf("access key permission is required")
	}
	e.u8(a.AccessKey.Permission.permissionTag())
	return a.AccessKey.Permission.encodeFields(e)
}

func (a DeleteKey) encodeFields(e *encoder) error {
	return e.publicKey(a.PublicKey)
}

func (a DeleteAccount) encodeFields(e *encoder) error {
	e.string(a.BeneficiaryID)
	return nil
}

func (FunctionCallPermission) permissionTag() uint8 { return 0 }
func (FullAccess) permissionTag() uint8             { return 1 }

func (FullAccess) encodeFields(*encoder) error { return nil }

func (p FunctionCallPermission) encodeFields(e *encoder) error {
	if p.Allowance == nil {
		e.u8(0)
	} else {
		e.u8(1)
		e.u128(*p.Allowance)
	}
	e.string(p.ReceiverID)
	e.u32(uint32(len(p.MethodNames)))
	for _, name := range p.MethodNames {
		e.string(name)
	}
	return nil
}
