package confirmations

// ClearIndexScriptHash exposes the cleanup script's SHA for redismock expectations
func ClearIndexScriptHash() string {
	return clearIndexScript.Hash()
}
