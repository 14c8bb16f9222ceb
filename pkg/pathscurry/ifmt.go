package pathscurry

import "io/fs"

// ifmtFromFileMode maps the portable fs.FileMode type bits fsprovider
// hands back (from either DirEntry.Type or StatInfo.Mode) onto the
// low-nibble IFMT encoding typeState packs. This is the one place the
// two vocabularies meet.
func ifmtFromFileMode(mode fs.FileMode) typeState {
	switch mode & fs.ModeType {
	case 0:
		return ifmtReg
	case fs.ModeDir:
		return ifmtDir
	case fs.ModeSymlink:
		return ifmtLnk
	case fs.ModeNamedPipe:
		return ifmtFIFO
	case fs.ModeSocket:
		return ifmtSock
	case fs.ModeDevice:
		return ifmtBlk
	case fs.ModeDevice | fs.ModeCharDevice:
		return ifmtChr
	default:
		return ifmtUnknown
	}
}
