//go:build !llrbdebug

package Trees

const debug = false
