package beats

// Gracefully stops module
func (mod *OutModule) Shutdown() (err error) {
	if mod == nil {
		return
	}

	mod.mu.Lock()
	defer mod.mu.Unlock()

	if mod.sink != nil {
		err = mod.sink.Close()
		mod.sink = nil
	}
	return
}
