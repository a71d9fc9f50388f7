// This file defines the bit-flag option fields of the command and factory
// headers.  The option types are the only place that knows the bit layout;
// callers use the named setters and predicates.
package cqc

// CmdOpt is the options bit field of a command header.
//
//	Flag     Name     Meaning
//	----     ----     -------
//	0x01     Notify   Send a notification when command completes.
//	0x02     Action   On if there are actions to execute when done.
//	0x04     Block    Block until command is done.
//	0x08     IfThen   Execute command after done.
type CmdOpt uint8

const (
	CmdOptNotify CmdOpt = 0x01
	CmdOptAction CmdOpt = 0x02
	CmdOptBlock  CmdOpt = 0x04
	CmdOptIfThen CmdOpt = 0x08
)

// The setters are idempotent and order-independent; they return the
// receiver so calls can be chained.

// SetNotify sets the notify flag.
func (o *CmdOpt) SetNotify() *CmdOpt {
	*o |= CmdOptNotify
	return o
}

// SetAction sets the action flag.
func (o *CmdOpt) SetAction() *CmdOpt {
	*o |= CmdOptAction
	return o
}

// SetBlock sets the block flag.
func (o *CmdOpt) SetBlock() *CmdOpt {
	*o |= CmdOptBlock
	return o
}

// SetIfThen sets the if-then flag.
func (o *CmdOpt) SetIfThen() *CmdOpt {
	*o |= CmdOptIfThen
	return o
}

// Notify reports whether the notify flag is set.
func (o CmdOpt) Notify() bool { return o&CmdOptNotify != 0 }

// Action reports whether the action flag is set.
func (o CmdOpt) Action() bool { return o&CmdOptAction != 0 }

// Block reports whether the block flag is set.
func (o CmdOpt) Block() bool { return o&CmdOptBlock != 0 }

// IfThen reports whether the if-then flag is set.
func (o CmdOpt) IfThen() bool { return o&CmdOptIfThen != 0 }

// FactoryOpt is the options bit field of a factory header.
//
//	Flag     Name     Meaning
//	----     ----     -------
//	0x01     Notify   Send a notification when the factory completes.
//	0x04     Block    Block until the factory is done.
type FactoryOpt uint8

const (
	FactoryOptNotify FactoryOpt = 0x01
	FactoryOptBlock  FactoryOpt = 0x04
)

// SetNotify sets the notify flag.
func (o *FactoryOpt) SetNotify() *FactoryOpt {
	*o |= FactoryOptNotify
	return o
}

// SetBlock sets the block flag.
func (o *FactoryOpt) SetBlock() *FactoryOpt {
	*o |= FactoryOptBlock
	return o
}

// Notify reports whether the notify flag is set.
func (o FactoryOpt) Notify() bool { return o&FactoryOptNotify != 0 }

// Block reports whether the block flag is set.
func (o FactoryOpt) Block() bool { return o&FactoryOptBlock != 0 }
