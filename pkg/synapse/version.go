package synapse

// Version is sent in the User-Agent header of every request.
const Version = "1.0.0"

const userAgent = "kalliopectl/" + Version
