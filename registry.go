package alsawatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Control names exposed by the two supported device families. A snd-aloop
// loopback PCM carries the "PCM Slave *" set; a USB-gadget UAC2 capture
// endpoint carries only "Capture Rate".
const (
	loopbackActiveControl   = "PCM Slave Active"
	loopbackChannelsControl = "PCM Slave Channels"
	loopbackFormatControl   = "PCM Slave Format"
	loopbackRateControl     = "PCM Slave Rate"
	gadgetRateControl       = "Capture Rate"
)

// deviceAddress is a parsed "card[,device[,subdevice]]" identifier.
type deviceAddress struct {
	card      string
	device    uint
	subdevice uint
}

func (a deviceAddress) String() string {
	return fmt.Sprintf("%s,%d,%d", a.card, a.device, a.subdevice)
}

// parseDeviceAddress splits a device identifier of the form
// "card[,device[,subdevice]]". Missing device and subdevice default to 0.
func parseDeviceAddress(spec string) (deviceAddress, error) {
	parts := strings.Split(spec, ",")
	if parts[0] == "" {
		return deviceAddress{}, fmt.Errorf("empty card in device '%s'", spec)
	}
	if len(parts) > 3 {
		return deviceAddress{}, fmt.Errorf("invalid device '%s': expected card[,device[,subdevice]]", spec)
	}

	addr := deviceAddress{card: parts[0]}

	if len(parts) >= 2 {
		device, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return deviceAddress{}, fmt.Errorf("invalid device number in '%s': %v", spec, err)
		}
		addr.device = uint(device)
	}
	if len(parts) >= 3 {
		subdevice, err := strconv.ParseUint(parts[2], 10, 32)
		if err != nil {
			return deviceAddress{}, fmt.Errorf("invalid subdevice number in '%s': %v", spec, err)
		}
		addr.subdevice = uint(subdevice)
	}

	return addr, nil
}

// findControl resolves a control name against the card's element enumeration,
// matching on exact name, interface, device, and subdevice. The first match in
// enumeration order wins. A name with no match resolves to nil: hardware that
// exposes only a subset of the tracked controls is expected, not an error.
func findControl(elements []ElementInfo, name string, iface Interface, addr deviceAddress, transform func(int64) (int64, bool)) *Control {
	for _, el := range elements {
		if el.Name == name && el.Interface == iface && el.Device == addr.device && el.Subdevice == addr.subdevice {
			return &Control{
				NumID:     el.NumID,
				Name:      el.Name,
				Interface: el.Interface,
				Device:    el.Device,
				Subdevice: el.Subdevice,
				Type:      el.Type,
				Count:     el.Count,
				transform: transform,
			}
		}
	}
	return nil
}
