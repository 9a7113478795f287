package handle

// noCopy makes go vet's copylocks check report Refs copied by value.
// A copied Ref would release a unit it never retained.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
