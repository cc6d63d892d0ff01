package test

import (
	"math/rand/v2"
	"strings"
)

const (
	loginAlphabet    = "abcdefghijklmnopqrstuvwxyz0123456789_"
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#%*"
)

var dishWords = []string{"spicy", "grilled", "ramen", "pizza", "curry", "noodle", "salad", "burger", "taco", "soup"}

// RandomCredentials returns a fresh login and password pair.
func RandomCredentials() (login, password string) {
	return randomString(loginAlphabet, 6, 14), randomString(passwordAlphabet, 12, 32)
}

// RandomDish returns a dish name built from a few food words.
func RandomDish() string {
	words := make([]string, 1+rand.IntN(3))
	for i := range words {
		words[i] = dishWords[rand.IntN(len(dishWords))]
	}
	return strings.Join(words, " ")
}

func randomString(alphabet string, minLen, maxLen int) string {
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
