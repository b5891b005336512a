package pika

import "github.com/zephyrtronium/contains"

// resolveReference implements the Reference Resolver: it parses identifier's
// prefix and returns the (target frame, bare symbol) it names, starting
// resolution from frame self.
//
//  1. "::" sends the target to the Root.
//  2. ":label:" walks self's caller chain for a frame with that label.
//  3. Each leading "^" after that steps one frame up the caller chain.
//  4. If the remaining symbol does not start with "$", the target is
//     redirected through its closure pointer; a "$" symbol stays at the
//     frame found by steps 1-3.
func resolveReference(self *Frame, identifier string) (*Frame, string) {
	target := self
	rest := identifier

	if len(rest) >= 2 && rest[0] == ':' && rest[1] == ':' {
		target = self.root.frame
		rest = rest[2:]
	} else if len(rest) >= 1 && rest[0] == ':' {
		end := indexByte(rest[1:], ':')
		if end < 0 {
			throw(InvalidIdentifier, "malformed frame label in: %s", identifier)
		}
		label := rest[1 : 1+end]
		rest = rest[1+end+1:]
		target = findAncestorByLabel(self, label)
	}

	seen := contains.Set{}
	for len(rest) > 0 && rest[0] == '^' {
		if target.caller == nil {
			throw(FrameDoesNotExist, "no caller frame above: %s", identifier)
		}
		if !seen.Add(frameUniqueID(target)) {
			throw(FrameDoesNotExist, "cyclic caller chain resolving: %s", identifier)
		}
		target = target.caller
		rest = rest[1:]
	}

	if len(rest) == 0 || rest[0] != '$' {
		target = target.closure
	}

	return target, rest
}

// findAncestorByLabel walks self's caller chain, including self, until it
// finds a frame whose label equals label. It fails with FrameDoesNotExist
// if the chain is exhausted, guarding against an accidental cycle the same
// way the resolver guards the "^" walk.
func findAncestorByLabel(self *Frame, label string) *Frame {
	want := ":" + label + ":"
	seen := contains.Set{}
	for f := self; f != nil; f = f.caller {
		if f.label == want || (f.label == "::" && label == "") {
			return f
		}
		if !seen.Add(frameUniqueID(f)) {
			break
		}
	}
	throw(FrameDoesNotExist, "no frame with label %q", label)
	panic("unreachable")
}

// frameUniqueID gives contains.Set a stable per-frame identity to track
// during the caller-chain walks above. Frames form a tree by construction,
// so these walks cannot genuinely cycle; the set is a defensive guard
// against a corrupted caller chain rather than an expected code path.
func frameUniqueID(f *Frame) uint64 {
	return uint64(uintptrOf(f))
}
