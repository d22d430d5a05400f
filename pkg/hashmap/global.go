package hashmap

const (
	OpenAddrMaxLoad = 0.50 // quadratic probing only covers the table while at most half full
	ChainedMaxLoad  = 1.00
	DefaultMapSize  = 11
)

// NextPrime returns the first prime reached by walking odd numbers upward from
// n. Even values are bumped to the next odd one first, so NextPrime(2) is 3.
// Anything below one starts the walk at one.
func NextPrime(n int) int {
	if n < 1 {
		n = 1
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}

// IsPrime reports whether n is prime using trial division by odd factors
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}
	return true
}

// AlignCapacity returns n if it is already prime, otherwise the next prime
// above it. It is the rounding rule used when a table is resized.
func AlignCapacity(n int) int {
	if IsPrime(n) {
		return n
	}
	return NextPrime(n)
}
