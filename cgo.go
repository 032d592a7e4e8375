package alsawatch

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>
*/
import "C"
import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// alsaError converts ALSA error codes to Go errors
func alsaError(code C.int, operation string) error {
	if code >= 0 {
		return nil
	}
	errStr := C.GoString(C.snd_strerror(code))
	return fmt.Errorf("%s: %s", operation, errStr)
}

// alsaHCtl implements HControl on top of the libasound control API.
type alsaHCtl struct {
	ptr     uintptr // snd_ctl_t* as uintptr
	pollFds []int
}

// cardName turns a card identifier (index, id, or full ALSA device name)
// into a name snd_ctl_open accepts.
func cardName(card string) string {
	if strings.Contains(card, ":") {
		return card
	}
	return "hw:" + card
}

// OpenHControl opens a non-blocking control handle for the given card and
// subscribes it to control change events. The card may be given as an index
// ("1"), a card id ("Loopback"), or a full ALSA name ("hw:1"). This is the
// single fatal error path of listener construction: a card that cannot be
// opened fails here, while individually missing controls never do.
func OpenHControl(card string) (HControl, error) {
	var handle *C.snd_ctl_t
	cName := C.CString(cardName(card))
	defer C.free(unsafe.Pointer(cName))

	err := C.snd_ctl_open(&handle, cName, C.SND_CTL_NONBLOCK)
	if err < 0 {
		return nil, alsaError(err, fmt.Sprintf("open card '%s'", card))
	}

	err = C.snd_ctl_subscribe_events(handle, 1)
	if err < 0 {
		C.snd_ctl_close(handle)
		return nil, alsaError(err, "subscribe to events")
	}

	count := C.snd_ctl_poll_descriptors_count(handle)
	if count <= 0 {
		C.snd_ctl_close(handle)
		return nil, fmt.Errorf("no poll descriptors available")
	}

	pfds := make([]C.struct_pollfd, count)
	n := C.snd_ctl_poll_descriptors(handle, &pfds[0], C.uint(count))
	if n < 0 {
		C.snd_ctl_close(handle)
		return nil, alsaError(n, "get poll descriptors")
	}

	pollFds := make([]int, count)
	for i := 0; i < int(count); i++ {
		pollFds[i] = int(pfds[i].fd)
	}

	return &alsaHCtl{
		ptr:     uintptr(unsafe.Pointer(handle)),
		pollFds: pollFds,
	}, nil
}

func (h *alsaHCtl) Close() error {
	if h.ptr == 0 {
		return nil
	}
	handle := (*C.snd_ctl_t)(unsafe.Pointer(h.ptr))
	err := C.snd_ctl_close(handle)
	h.ptr = 0
	return alsaError(err, "close card")
}

// Elements lists all control elements on the card
func (h *alsaHCtl) Elements() ([]ElementInfo, error) {
	handle := (*C.snd_ctl_t)(unsafe.Pointer(h.ptr))
	var info *C.snd_ctl_elem_info_t
	C.snd_ctl_elem_info_malloc(&info)
	defer C.snd_ctl_elem_info_free(info)

	var list *C.snd_ctl_elem_list_t
	C.snd_ctl_elem_list_malloc(&list)
	defer C.snd_ctl_elem_list_free(list)

	err := C.snd_ctl_elem_list(handle, list)
	if err < 0 {
		return nil, alsaError(err, "get element list")
	}

	count := C.snd_ctl_elem_list_get_count(list)
	err = C.snd_ctl_elem_list_alloc_space(list, count)
	if err < 0 {
		return nil, alsaError(err, "allocate element list space")
	}
	defer C.snd_ctl_elem_list_free_space(list)

	err = C.snd_ctl_elem_list(handle, list)
	if err < 0 {
		return nil, alsaError(err, "fill element list")
	}

	elements := make([]ElementInfo, 0, count)

	for i := C.uint(0); i < count; i++ {
		numid := C.snd_ctl_elem_list_get_numid(list, i)

		C.snd_ctl_elem_info_set_numid(info, numid)
		err = C.snd_ctl_elem_info(handle, info)
		if err < 0 {
			continue // skip elements we can't query
		}

		elements = append(elements, ElementInfo{
			NumID:     uint(numid),
			Interface: Interface(C.snd_ctl_elem_info_get_interface(info)),
			Device:    uint(C.snd_ctl_elem_info_get_device(info)),
			Subdevice: uint(C.snd_ctl_elem_info_get_subdevice(info)),
			Name:      C.GoString(C.snd_ctl_elem_info_get_name(info)),
			Type:      ControlType(C.snd_ctl_elem_info_get_type(info)),
			Count:     int(C.snd_ctl_elem_info_get_count(info)),
		})
	}

	return elements, nil
}

// ReadValue reads the current value of an element: element metadata first
// for the type and value count, then the value tuple, of which the first
// entry is returned.
func (h *alsaHCtl) ReadValue(numid uint) (int64, error) {
	handle := (*C.snd_ctl_t)(unsafe.Pointer(h.ptr))

	var info *C.snd_ctl_elem_info_t
	C.snd_ctl_elem_info_malloc(&info)
	defer C.snd_ctl_elem_info_free(info)

	C.snd_ctl_elem_info_set_numid(info, C.uint(numid))
	err := C.snd_ctl_elem_info(handle, info)
	if err < 0 {
		return 0, alsaError(err, "element info")
	}

	if C.snd_ctl_elem_info_get_count(info) == 0 {
		return 0, fmt.Errorf("element %d has no values", numid)
	}

	var value *C.snd_ctl_elem_value_t
	C.snd_ctl_elem_value_malloc(&value)
	defer C.snd_ctl_elem_value_free(value)

	C.snd_ctl_elem_value_set_numid(value, C.uint(numid))
	err = C.snd_ctl_elem_read(handle, value)
	if err < 0 {
		return 0, alsaError(err, "read element")
	}

	switch ControlType(C.snd_ctl_elem_info_get_type(info)) {
	case ControlTypeBoolean:
		return int64(C.snd_ctl_elem_value_get_boolean(value, 0)), nil
	case ControlTypeInteger:
		return int64(C.snd_ctl_elem_value_get_integer(value, 0)), nil
	case ControlTypeEnumerated:
		return int64(C.snd_ctl_elem_value_get_enumerated(value, 0)), nil
	case ControlTypeInteger64:
		return int64(C.snd_ctl_elem_value_get_integer64(value, 0)), nil
	default:
		return 0, fmt.Errorf("unsupported element type: %v", ControlType(C.snd_ctl_elem_info_get_type(info)))
	}
}

// Wait blocks on the card's poll descriptors until a control change is
// signalled or the timeout elapses.
func (h *alsaHCtl) Wait(timeoutMs int) (bool, error) {
	fds := make([]unix.PollFd, len(h.pollFds))
	for i, fd := range h.pollFds {
		fds[i] = unix.PollFd{
			Fd:     int32(fd),
			Events: unix.POLLIN,
		}
	}

	n, err := unix.Poll(fds, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, fmt.Errorf("poll failed: %v", err)
	}

	return n > 0, nil
}

// Drain reads and discards all pending control events. The handle is open
// in non-blocking mode, so the read loop ends on EAGAIN.
func (h *alsaHCtl) Drain() (int, error) {
	handle := (*C.snd_ctl_t)(unsafe.Pointer(h.ptr))
	var event *C.snd_ctl_event_t
	C.snd_ctl_event_malloc(&event)
	defer C.snd_ctl_event_free(event)

	drained := 0
	for {
		err := C.snd_ctl_read(handle, event)
		if err < 0 {
			if err == -C.EAGAIN {
				return drained, nil
			}
			return drained, alsaError(err, "read event")
		}
		drained++
	}
}
