package monitoring

import (
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestFallbackIsDeterministic(t *testing.T) {
	is := is.New(t)

	for _, id := range []string{"prov-1001", "prov-1002", "a", ""} {
		is.Equal(Fallback(id, FallbackBattery), Fallback(id, FallbackBattery))
		is.Equal(Fallback(id, FallbackSensorSignal), Fallback(id, FallbackSensorSignal))
		is.Equal(Fallback(id, FallbackGatewaySignal), Fallback(id, FallbackGatewaySignal))
	}
}

func TestFallbackRanges(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 500; i++ {
		id := fmt.Sprintf("sensor-%d", i)

		battery := Fallback(id, FallbackBattery)
		is.True(battery >= 15 && battery <= 95)

		signal := Fallback(id, FallbackSensorSignal)
		is.True(signal >= -85 && signal <= -45)

		gateway := Fallback(id, FallbackGatewaySignal)
		is.True(gateway >= -60 && gateway <= -30)
	}
}

func TestFallbackKnownValue(t *testing.T) {
	is := is.New(t)

	// seed for "AB" is 65+66=131; (131*9301+49297) % 233280 = 1267728 % 233280 = 101328
	// 101328/233280 = 0.43436... -> battery 15 + 0.43436*80 = 49
	is.Equal(49, Fallback("AB", FallbackBattery))
}
