package dictionary

const ret = true

// standard lists the attributes known out of the box. Rows follow PS3.6 and
// PS3.7 notation.
var standard = []Definition{
	// Command group
	{0x0000, 0x0000, UL, "1", "CommandGroupLength", "Command Group Length", false},
	{0x0000, 0x0002, UI, "1", "AffectedSOPClassUID", "Affected SOP Class UID", false},
	{0x0000, 0x0003, UI, "1", "RequestedSOPClassUID", "Requested SOP Class UID", false},
	{0x0000, 0x0100, US, "1", "CommandField", "Command Field", false},
	{0x0000, 0x0110, US, "1", "MessageID", "Message ID", false},
	{0x0000, 0x0120, US, "1", "MessageIDBeingRespondedTo", "Message ID Being Responded To", false},
	{0x0000, 0x0600, AE, "1", "MoveDestination", "Move Destination", false},
	{0x0000, 0x0700, US, "1", "Priority", "Priority", false},
	{0x0000, 0x0800, US, "1", "CommandDataSetType", "Command Data Set Type", false},
	{0x0000, 0x0900, US, "1", "Status", "Status", false},
	{0x0000, 0x0901, AT, "1-n", "OffendingElement", "Offending Element", false},
	{0x0000, 0x0902, LO, "1", "ErrorComment", "Error Comment", false},
	{0x0000, 0x1000, UI, "1", "AffectedSOPInstanceUID", "Affected SOP Instance UID", false},
	{0x0000, 0x1001, UI, "1", "RequestedSOPInstanceUID", "Requested SOP Instance UID", false},
	{0x0000, 0x1020, US, "1", "NumberOfRemainingSuboperations", "Number of Remaining Sub-operations", false},
	{0x0000, 0x1021, US, "1", "NumberOfCompletedSuboperations", "Number of Completed Sub-operations", false},
	{0x0000, 0x1022, US, "1", "NumberOfFailedSuboperations", "Number of Failed Sub-operations", false},
	{0x0000, 0x1023, US, "1", "NumberOfWarningSuboperations", "Number of Warning Sub-operations", false},
	{0x0000, 0x1030, AE, "1", "MoveOriginatorApplicationEntityTitle", "Move Originator Application Entity Title", false},
	{0x0000, 0x1031, US, "1", "MoveOriginatorMessageID", "Move Originator Message ID", false},

	// File meta information
	{0x0002, 0x0000, UL, "1", "FileMetaInformationGroupLength", "File Meta Information Group Length", false},
	{0x0002, 0x0001, OB, "1", "FileMetaInformationVersion", "File Meta Information Version", false},
	{0x0002, 0x0002, UI, "1", "MediaStorageSOPClassUID", "Media Storage SOP Class UID", false},
	{0x0002, 0x0003, UI, "1", "MediaStorageSOPInstanceUID", "Media Storage SOP Instance UID", false},
	{0x0002, 0x0010, UI, "1", "TransferSyntaxUID", "Transfer Syntax UID", false},
	{0x0002, 0x0012, UI, "1", "ImplementationClassUID", "Implementation Class UID", false},
	{0x0002, 0x0013, SH, "1", "ImplementationVersionName", "Implementation Version Name", false},
	{0x0002, 0x0016, AE, "1", "SourceApplicationEntityTitle", "Source Application Entity Title", false},

	// Identification
	{0x0008, 0x0001, UL, "1", "LengthToEnd", "Length to End", ret},
	{0x0008, 0x0005, CS, "1-n", "SpecificCharacterSet", "Specific Character Set", false},
	{0x0008, 0x0008, CS, "2-n", "ImageType", "Image Type", false},
	{0x0008, 0x0010, SH, "1", "RecognitionCode", "Recognition Code", ret},
	{0x0008, 0x0012, DA, "1", "InstanceCreationDate", "Instance Creation Date", false},
	{0x0008, 0x0013, TM, "1", "InstanceCreationTime", "Instance Creation Time", false},
	{0x0008, 0x0016, UI, "1", "SOPClassUID", "SOP Class UID", false},
	{0x0008, 0x0018, UI, "1", "SOPInstanceUID", "SOP Instance UID", false},
	{0x0008, 0x0020, DA, "1", "StudyDate", "Study Date", false},
	{0x0008, 0x0021, DA, "1", "SeriesDate", "Series Date", false},
	{0x0008, 0x0022, DA, "1", "AcquisitionDate", "Acquisition Date", false},
	{0x0008, 0x0023, DA, "1", "ContentDate", "Content Date", false},
	{0x0008, 0x0030, TM, "1", "StudyTime", "Study Time", false},
	{0x0008, 0x0031, TM, "1", "SeriesTime", "Series Time", false},
	{0x0008, 0x0032, TM, "1", "AcquisitionTime", "Acquisition Time", false},
	{0x0008, 0x0033, TM, "1", "ContentTime", "Content Time", false},
	{0x0008, 0x0050, SH, "1", "AccessionNumber", "Accession Number", false},
	{0x0008, 0x0052, CS, "1", "QueryRetrieveLevel", "Query/Retrieve Level", false},
	{0x0008, 0x0054, AE, "1-n", "RetrieveAETitle", "Retrieve AE Title", false},
	{0x0008, 0x0056, CS, "1", "InstanceAvailability", "Instance Availability", false},
	{0x0008, 0x0060, CS, "1", "Modality", "Modality", false},
	{0x0008, 0x0061, CS, "1-n", "ModalitiesInStudy", "Modalities in Study", false},
	{0x0008, 0x0064, CS, "1", "ConversionType", "Conversion Type", false},
	{0x0008, 0x0070, LO, "1", "Manufacturer", "Manufacturer", false},
	{0x0008, 0x0080, LO, "1", "InstitutionName", "Institution Name", false},
	{0x0008, 0x0090, PN, "1", "ReferringPhysicianName", "Referring Physician's Name", false},
	{0x0008, 0x1010, SH, "1", "StationName", "Station Name", false},
	{0x0008, 0x1030, LO, "1", "StudyDescription", "Study Description", false},
	{0x0008, 0x103E, LO, "1", "SeriesDescription", "Series Description", false},
	{0x0008, 0x1090, LO, "1", "ManufacturerModelName", "Manufacturer's Model Name", false},
	{0x0008, 0x1140, SQ, "1", "ReferencedImageSequence", "Referenced Image Sequence", false},
	{0x0008, 0x1150, UI, "1", "ReferencedSOPClassUID", "Referenced SOP Class UID", false},
	{0x0008, 0x1155, UI, "1", "ReferencedSOPInstanceUID", "Referenced SOP Instance UID", false},

	// Patient
	{0x0010, 0x0010, PN, "1", "PatientName", "Patient's Name", false},
	{0x0010, 0x0020, LO, "1", "PatientID", "Patient ID", false},
	{0x0010, 0x0021, LO, "1", "IssuerOfPatientID", "Issuer of Patient ID", false},
	{0x0010, 0x0030, DA, "1", "PatientBirthDate", "Patient's Birth Date", false},
	{0x0010, 0x0032, TM, "1", "PatientBirthTime", "Patient's Birth Time", false},
	{0x0010, 0x0040, CS, "1", "PatientSex", "Patient's Sex", false},
	{0x0010, 0x1000, LO, "1-n", "OtherPatientIDs", "Other Patient IDs", ret},
	{0x0010, 0x1001, PN, "1-n", "OtherPatientNames", "Other Patient Names", false},
	{0x0010, 0x1010, AS, "1", "PatientAge", "Patient's Age", false},
	{0x0010, 0x1020, DS, "1", "PatientSize", "Patient's Size", false},
	{0x0010, 0x1030, DS, "1", "PatientWeight", "Patient's Weight", false},
	{0x0010, 0x4000, LT, "1", "PatientComments", "Patient Comments", false},

	// Acquisition
	{0x0018, 0x0015, CS, "1", "BodyPartExamined", "Body Part Examined", false},
	{0x0018, 0x0020, CS, "1-n", "ScanningSequence", "Scanning Sequence", false},
	{0x0018, 0x0050, DS, "1", "SliceThickness", "Slice Thickness", false},
	{0x0018, 0x0060, DS, "1", "KVP", "KVP", false},
	{0x0018, 0x0088, DS, "1", "SpacingBetweenSlices", "Spacing Between Slices", false},
	{0x0018, 0x1020, LO, "1-n", "SoftwareVersions", "Software Versions", false},
	{0x0018, 0x1030, LO, "1", "ProtocolName", "Protocol Name", false},
	{0x0018, 0x1150, IS, "1", "ExposureTime", "Exposure Time", false},
	{0x0018, 0x1151, IS, "1", "XRayTubeCurrent", "X-Ray Tube Current", false},
	{0x0018, 0x1310, US, "4", "AcquisitionMatrix", "Acquisition Matrix", false},
	{0x0018, 0x1620, IS, "2-2n", "VerticesOfThePolygonalCollimator", "Vertices of the Polygonal Collimator", false},
	{0x0018, 0x5100, CS, "1", "PatientPosition", "Patient Position", false},

	// Relationship
	{0x0020, 0x000D, UI, "1", "StudyInstanceUID", "Study Instance UID", false},
	{0x0020, 0x000E, UI, "1", "SeriesInstanceUID", "Series Instance UID", false},
	{0x0020, 0x0010, SH, "1", "StudyID", "Study ID", false},
	{0x0020, 0x0011, IS, "1", "SeriesNumber", "Series Number", false},
	{0x0020, 0x0012, IS, "1", "AcquisitionNumber", "Acquisition Number", false},
	{0x0020, 0x0013, IS, "1", "InstanceNumber", "Instance Number", false},
	{0x0020, 0x0020, CS, "2", "PatientOrientation", "Patient Orientation", false},
	{0x0020, 0x0032, DS, "3", "ImagePositionPatient", "Image Position (Patient)", false},
	{0x0020, 0x0037, DS, "6", "ImageOrientationPatient", "Image Orientation (Patient)", false},
	{0x0020, 0x0050, DS, "1", "Location", "Location", ret},
	{0x0020, 0x0052, UI, "1", "FrameOfReferenceUID", "Frame of Reference UID", false},
	{0x0020, 0x1040, LO, "1", "PositionReferenceIndicator", "Position Reference Indicator", false},
	{0x0020, 0x1041, DS, "1", "SliceLocation", "Slice Location", false},
	{0x0020, 0x1206, IS, "1", "NumberOfStudyRelatedSeries", "Number of Study Related Series", false},
	{0x0020, 0x1208, IS, "1", "NumberOfStudyRelatedInstances", "Number of Study Related Instances", false},
	{0x0020, 0x1209, IS, "1", "NumberOfSeriesRelatedInstances", "Number of Series Related Instances", false},

	// Image pixel
	{0x0028, 0x0002, US, "1", "SamplesPerPixel", "Samples per Pixel", false},
	{0x0028, 0x0004, CS, "1", "PhotometricInterpretation", "Photometric Interpretation", false},
	{0x0028, 0x0005, US, "1", "ImageDimensions", "Image Dimensions", ret},
	{0x0028, 0x0006, US, "1", "PlanarConfiguration", "Planar Configuration", false},
	{0x0028, 0x0008, IS, "1", "NumberOfFrames", "Number of Frames", false},
	{0x0028, 0x0010, US, "1", "Rows", "Rows", false},
	{0x0028, 0x0011, US, "1", "Columns", "Columns", false},
	{0x0028, 0x0030, DS, "2", "PixelSpacing", "Pixel Spacing", false},
	{0x0028, 0x0034, IS, "2", "PixelAspectRatio", "Pixel Aspect Ratio", false},
	{0x0028, 0x0100, US, "1", "BitsAllocated", "Bits Allocated", false},
	{0x0028, 0x0101, US, "1", "BitsStored", "Bits Stored", false},
	{0x0028, 0x0102, US, "1", "HighBit", "High Bit", false},
	{0x0028, 0x0103, US, "1", "PixelRepresentation", "Pixel Representation", false},
	{0x0028, 0x1050, DS, "1-n", "WindowCenter", "Window Center", false},
	{0x0028, 0x1051, DS, "1-n", "WindowWidth", "Window Width", false},
	{0x0028, 0x1052, DS, "1", "RescaleIntercept", "Rescale Intercept", false},
	{0x0028, 0x1053, DS, "1", "RescaleSlope", "Rescale Slope", false},
	{0x0028, 0x1054, LO, "1", "RescaleType", "Rescale Type", false},
	{0x0028, 0x2110, CS, "1", "LossyImageCompression", "Lossy Image Compression", false},
	{0x0028, 0x2112, DS, "1-n", "LossyImageCompressionRatio", "Lossy Image Compression Ratio", false},

	// Scheduling
	{0x0040, 0x0001, AE, "1-n", "ScheduledStationAETitle", "Scheduled Station AE Title", false},
	{0x0040, 0x0002, DA, "1", "ScheduledProcedureStepStartDate", "Scheduled Procedure Step Start Date", false},
	{0x0040, 0x0003, TM, "1", "ScheduledProcedureStepStartTime", "Scheduled Procedure Step Start Time", false},
	{0x0040, 0x0006, PN, "1", "ScheduledPerformingPhysicianName", "Scheduled Performing Physician's Name", false},
	{0x0040, 0x0007, LO, "1", "ScheduledProcedureStepDescription", "Scheduled Procedure Step Description", false},
	{0x0040, 0x0009, SH, "1", "ScheduledProcedureStepID", "Scheduled Procedure Step ID", false},
	{0x0040, 0x0100, SQ, "1", "ScheduledProcedureStepSequence", "Scheduled Procedure Step Sequence", false},
	{0x0040, 0x1001, SH, "1", "RequestedProcedureID", "Requested Procedure ID", false},

	{0x0070, 0x0022, FL, "2-n", "GraphicData", "Graphic Data", false},
	{0x3006, 0x0050, DS, "3-3n", "ContourData", "Contour Data", false},

	{0x7FE0, 0x0010, OW, "1", "PixelData", "Pixel Data", false},

	// Delimiters
	{0xFFFE, 0xE000, NoVR, "1", "Item", "Item", false},
	{0xFFFE, 0xE00D, NoVR, "1", "ItemDelimitationItem", "Item Delimitation Item", false},
	{0xFFFE, 0xE0DD, NoVR, "1", "SequenceDelimitationItem", "Sequence Delimitation Item", false},
}
