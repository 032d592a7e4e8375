package alsawatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeviceAddress(t *testing.T) {
	tests := []struct {
		spec    string
		want    deviceAddress
		wantErr bool
	}{
		{spec: "Loopback", want: deviceAddress{card: "Loopback"}},
		{spec: "1", want: deviceAddress{card: "1"}},
		{spec: "hw:1", want: deviceAddress{card: "hw:1"}},
		{spec: "Loopback,1", want: deviceAddress{card: "Loopback", device: 1}},
		{spec: "Loopback,1,2", want: deviceAddress{card: "Loopback", device: 1, subdevice: 2}},
		{spec: "UAC2Gadget,0,0", want: deviceAddress{card: "UAC2Gadget"}},
		{spec: "", wantErr: true},
		{spec: "Loopback,x", wantErr: true},
		{spec: "Loopback,1,x", wantErr: true},
		{spec: "Loopback,1,2,3", wantErr: true},
		{spec: "Loopback,-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parseDeviceAddress(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindControl(t *testing.T) {
	elements := []ElementInfo{
		{NumID: 10, Interface: InterfaceMixer, Device: 0, Subdevice: 0, Name: "Capture Rate", Type: ControlTypeInteger, Count: 1},
		{NumID: 11, Interface: InterfacePCM, Device: 1, Subdevice: 0, Name: "Capture Rate", Type: ControlTypeInteger, Count: 1},
		{NumID: 12, Interface: InterfacePCM, Device: 0, Subdevice: 0, Name: "Capture Rate", Type: ControlTypeInteger, Count: 1},
		{NumID: 13, Interface: InterfacePCM, Device: 0, Subdevice: 0, Name: "Capture Rate", Type: ControlTypeInteger, Count: 1},
		{NumID: 14, Interface: InterfacePCM, Device: 0, Subdevice: 0, Name: "PCM Slave Format", Type: ControlTypeInteger, Count: 1},
	}

	t.Run("matches name, interface, device, and subdevice", func(t *testing.T) {
		ctl := findControl(elements, "Capture Rate", InterfacePCM, deviceAddress{card: "x", device: 1}, nil)
		require.NotNil(t, ctl)
		assert.Equal(t, uint(11), ctl.NumID)
	})

	t.Run("first match in enumeration order wins", func(t *testing.T) {
		ctl := findControl(elements, "Capture Rate", InterfacePCM, deviceAddress{card: "x"}, nil)
		require.NotNil(t, ctl)
		assert.Equal(t, uint(12), ctl.NumID)
	})

	t.Run("interface filters out mixer controls", func(t *testing.T) {
		ctl := findControl(elements, "Capture Rate", InterfaceMixer, deviceAddress{card: "x"}, nil)
		require.NotNil(t, ctl)
		assert.Equal(t, uint(10), ctl.NumID)
	})

	t.Run("absent name resolves to nil", func(t *testing.T) {
		assert.Nil(t, findControl(elements, "PCM Slave Active", InterfacePCM, deviceAddress{card: "x"}, nil))
	})

	t.Run("wrong subdevice resolves to nil", func(t *testing.T) {
		assert.Nil(t, findControl(elements, "PCM Slave Format", InterfacePCM, deviceAddress{card: "x", subdevice: 7}, nil))
	})

	t.Run("transform is attached to the handle", func(t *testing.T) {
		ctl := findControl(elements, "PCM Slave Format", InterfacePCM, deviceAddress{card: "x"}, sampleFormatTransform)
		require.NotNil(t, ctl)
		require.NotNil(t, ctl.transform)
		v, ok := ctl.transform(alsaFmtS32LE)
		assert.True(t, ok)
		assert.Equal(t, int64(FormatS32LE), v)
	})
}
