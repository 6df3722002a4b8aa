//go:build llrbdebug

package Trees

// debug makes every mutating method validate the whole tree with check and panic on the
// first violation. Build or test with -tags llrbdebug to enable it.
const debug = true
