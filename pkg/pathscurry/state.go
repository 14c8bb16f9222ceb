package pathscurry

// typeState packs a node's inode type and auxiliary flags into a single
// word. The low 4 bits carry the Unix S_IFMT nibble; the upper bits are
// independent flags.
//
// This is the hottest field on a node: canReaddir, canReadlink,
// shouldWalk, and every step of resolve/child inspect it.
type typeState uint16

const (
	// ifmtUnknown means the node's inode type has not been observed
	// yet (no lstat, no readdir entry for it).
	ifmtUnknown typeState = 0x0
	ifmtFIFO    typeState = 0x1
	ifmtChr     typeState = 0x2
	ifmtDir     typeState = 0x4
	ifmtBlk     typeState = 0x6
	ifmtReg     typeState = 0x8
	ifmtLnk     typeState = 0xA
	ifmtSock    typeState = 0xC

	ifmtMask typeState = 0xF

	// readdirCalled: the children array is authoritative up to
	// Children.provisional.
	readdirCalled typeState = 1 << 4
	// lstatCalled: the stat fields are filled in (bit 5).
	lstatCalled typeState = 1 << 5
	// enotdir: this node cannot have children (bit 6).
	enotdir typeState = 1 << 6
	// enoent: this node or an ancestor definitely does not exist
	// (bit 7).
	enoent typeState = 1 << 7
	// enoreadlink: readlink has failed or is impossible (bit 8).
	enoreadlink typeState = 1 << 8
	// enorealpath: realpath has failed or is impossible (bit 9).
	enorealpath typeState = 1 << 9

	// enochild is the disjunction "this node cannot legitimately have
	// children": ENOTDIR, ENOENT, or ENOREALPATH.
	enochild = enotdir | enoent | enorealpath
)

func (t typeState) ifmt() typeState { return t & ifmtMask }

func (t typeState) is(flag typeState) bool { return t&flag != 0 }

// withIfmt replaces the low nibble (inode type), leaving every other
// flag untouched. Invariants like "setting ENOENT clears IFMT" are
// applied by the markENOTDIR/markENOENT/markENOREALPATH helpers below,
// not by this one.
func (t typeState) withIfmt(ifmt typeState) typeState {
	return (t &^ ifmtMask) | (ifmt & ifmtMask)
}

func (t typeState) set(flags typeState) typeState   { return t | flags }
func (t typeState) clear(flags typeState) typeState { return t &^ flags }

// markENOTDIR clears IFMT to UNKNOWN when the current IFMT is DIR,
// before setting ENOTDIR: a node can never carry both IFMT = DIR and
// ENOTDIR at once, since that combination contradicts itself.
func (t typeState) markENOTDIR() typeState {
	if t.ifmt() == ifmtDir {
		t = t.withIfmt(ifmtUnknown)
	}
	return t.set(enotdir)
}

// markENOENT applies the invariant "setting ENOENT clears IFMT".
func (t typeState) markENOENT() typeState {
	return t.withIfmt(ifmtUnknown).set(enoent)
}

// markENOREALPATH applies "on failure set ENOREALPATH, which also sets
// ENOTDIR".
func (t typeState) markENOREALPATH() typeState {
	return t.markENOTDIR().set(enorealpath)
}

// canHaveChildren reports whether IFMT is consistent with directory-like
// behavior (UNKNOWN, DIR, or LNK) and no ENOCHILD bit forbids it. This is
// the readdir precondition and the shouldWalk gate.
func (t typeState) canHaveChildren() bool {
	if t.is(enochild) {
		return false
	}
	switch t.ifmt() {
	case ifmtUnknown, ifmtDir, ifmtLnk:
		return true
	default:
		return false
	}
}

func (t typeState) isDir() bool { return t.ifmt() == ifmtDir }
func (t typeState) isLnk() bool { return t.ifmt() == ifmtLnk }
