package signing

const (
	// ClobDomainName is the EIP-712 domain name for CLOB auth signatures.
	ClobDomainName = "ClobAuthDomain"

	// ClobVersion is the EIP-712 domain version.
	ClobVersion = "1"

	// MsgToSign is the fixed attestation included in every ClobAuth struct.
	// It domain-separates these signatures from any other signing use.
	MsgToSign = "This message attests that I control the given wallet"
)
