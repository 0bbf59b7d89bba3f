package core

// Entity is a unique identifier for an entity in the world
// Zero is never handed out and marks "no entity"
type Entity uint64
