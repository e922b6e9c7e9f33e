package misc

// Nothing is the placeholder payload for rpc calls that carry no data in
// one direction.
type Nothing struct{}
