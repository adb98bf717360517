package betabinom

// Private hooks re-exported for white-box tests only.
var MomentsStart = momentsStart
