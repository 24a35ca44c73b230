package pkg

import (
	cryptoRand "crypto/rand"
	"fmt"
	"math/big"
)

// 重置验证码位数，与 handler 的 len=6 绑定校验一致
const resetCodeDigits = 6

var resetCodeMax = big.NewInt(1000000)

// NewResetCode 生成定长数字验证码，crypto/rand 保证不可预测
func NewResetCode() (string, error) {
	n, err := cryptoRand.Int(cryptoRand.Reader, resetCodeMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", resetCodeDigits, n), nil
}
